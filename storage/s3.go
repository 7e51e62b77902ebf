package storage

import (
	"blog/config"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket string) StorageAPI {
	awsConfig := aws.Config{
		Region: aws.String(config.S3_REGION),
	}
	if config.S3_ENDPOINT != "" {
		awsConfig.Endpoint = aws.String(config.S3_ENDPOINT)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	if config.S3_ACCESS_KEY != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.S3_ACCESS_KEY, config.S3_SECRET_KEY, "")
	}
	sess := session.Must(session.NewSession(&awsConfig))
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(sess),
	}
}

// GetFullPath returns the object key; there is no local path for S3
func (s *S3Storage) GetFullPath(path string) string {
	return path
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(path),
		ContentType: &mimeType,
		Body:        reader,
	})
	if err != nil {
		return 0, err
	}
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	return aws.Int64Value(head.ContentLength), nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		writer.Header().Set("Content-Type", mimeType)
	}
	if _, err := s.Load(path, writer); err != nil {
		http.NotFound(writer, request)
	}
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}

func (s *S3Storage) GetFreeSpace() uint64 {
	return 0 // not meaningful for S3
}
