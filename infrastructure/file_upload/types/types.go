package types

type FileUploaderType interface {
	GenerateDownloadURL(fileName string) (*string, error)
	GenerateUploadURL(fileName string) (*string, error)
	CheckFileExists(fileName string) (bool, error)
	DeleteFile(fileName string) error
}

type SignedURLPermission struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}
