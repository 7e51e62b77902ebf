package storage

import (
	"blog/config"
	"io"
	"log"
	"net/http"
)

type StorageAPI interface {
	GetFullPath(path string) string
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetFreeSpace() uint64
}

var media StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		media = NewS3Storage(config.S3_BUCKET)
		log.Printf("Media storage: S3 bucket %s", config.S3_BUCKET)
		return
	}
	media = NewDiskStorage(config.MEDIA_DIR)
	log.Printf("Media storage: %s", config.MEDIA_DIR)
}

// Media returns the storage holding uploaded post images.
func Media() StorageAPI {
	if media == nil {
		panic("storage not initialized")
	}
	return media
}
