package dto

import "go-controls/pkg/security"

// FoldersInput lists the folder tree below path; an empty path is the asset root
type FoldersInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Path    string `json:"path,omitempty" doc:"Root relative folder path using forward slashes"`
		LoadAll bool   `json:"loadAll,omitempty"`
	}
}

type FilesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Folder string `json:"folder,omitempty"`
	}
}

type CreateFolderInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Parent string `json:"parent,omitempty"`
		Name   string `json:"name,omitempty"`
	}
}

type RenameFolderInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Folder  string `json:"folder,omitempty"`
		NewName string `json:"newName,omitempty"`
	}
}

type DeleteFolderInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Folder string `json:"folder,omitempty"`
	}
}

type UploadFileInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Folder        string `json:"folder,omitempty"`
		FileName      string `json:"fileName,omitempty"`
		ContentBase64 string `json:"contentBase64,omitempty" doc:"Standard base64 encoded file content"`
	}
}

type RenameFileInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		File    string `json:"file,omitempty"`
		NewName string `json:"newName,omitempty"`
	}
}

type DeleteFileInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		File string `json:"file,omitempty"`
	}
}
