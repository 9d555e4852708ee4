package storage

import (
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Storage keeps face images as objects in a single bucket.
// Credentials come from the default AWS chain (env vars, shared config, IAM role).
type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket, region string) StorageAPI {
	sess := session.Must(session.NewSession(&aws.Config{Region: aws.String(region)}))
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(sess),
	}
}

// GetFullPath returns the object key - there is no local path for S3
func (s *S3Storage) GetFullPath(path string) string {
	return path
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket:      &s.bucket,
		Key:         aws.String(path),
		ContentType: aws.String("image/jpeg"),
		Body:        reader,
	})
	return 0, err
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

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}

func (s *S3Storage) Exists(path string) bool {
	_, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if aerr, ok := err.(awserr.RequestFailure); ok && aerr.StatusCode() == 404 {
		return false
	}
	return err == nil
}

func (s *S3Storage) List() ([]string, error) {
	var names []string
	err := s.s3Client.ListObjectsV2Pages(&s3.ListObjectsV2Input{
		Bucket: &s.bucket,
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			names = append(names, aws.StringValue(obj.Key))
		}
		return true
	})
	return names, err
}
