package firebase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"prestige-backend/utils"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"google.golang.org/api/option"
)

// StorageClient deletes objects from the bucket car images are uploaded to.
type StorageClient interface {
	Bucket() string
	DeleteFile(ctx context.Context, objectPath string) error
}

// Client is the Firebase Storage implementation of StorageClient.
type Client struct {
	app    *firebase.App
	bucket string
}

// credentialOptions reads GOOGLE_APPLICATION_CREDENTIALS as inline JSON or a file path.
func credentialOptions(cred string) []option.ClientOption {
	switch {
	case cred == "":
		log.Println("Warning: GOOGLE_APPLICATION_CREDENTIALS not set, using default credentials")
		return nil
	case strings.HasPrefix(strings.TrimSpace(cred), "{"):
		log.Println("Using Firebase credentials from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	default:
		log.Println("Using Firebase credentials from file:", cred)
		return []option.ClientOption{option.WithCredentialsFile(cred)}
	}
}

func Init(ctx context.Context, bucket string) (*Client, error) {
	if bucket == "" {
		return nil, fmt.Errorf("FIREBASE_STORAGE_BUCKET not set")
	}

	opts := credentialOptions(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase init failed: %w", err)
	}

	log.Println("Firebase initialized successfully")
	return &Client{app: app, bucket: bucket}, nil
}

func (c *Client) Bucket() string { return c.bucket }

// DeleteFile deletes an object from the bucket. An object that is already gone is not an error.
func (c *Client) DeleteFile(ctx context.Context, objectPath string) error {
	client, err := c.app.Storage(ctx)
	if err != nil {
		return err
	}

	bucket, err := client.Bucket(c.bucket)
	if err != nil {
		return err
	}

	if err := bucket.Object(objectPath).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete object %s: %v", objectPath, err)
	}

	log.Printf("Deleted file %s from bucket %s", objectPath, c.bucket)
	return nil
}

// NoopStorage is used when no bucket is configured. It owns no objects.
type NoopStorage struct{}

func (NoopStorage) Bucket() string                                    { return "" }
func (NoopStorage) DeleteFile(ctx context.Context, path string) error { return nil }

// NewStorageClient returns a Firebase client for FIREBASE_STORAGE_BUCKET, or a
// NoopStorage when the bucket is unset or Firebase cannot be initialised.
func NewStorageClient(ctx context.Context) StorageClient {
	bucket := os.Getenv("FIREBASE_STORAGE_BUCKET")
	if bucket == "" {
		log.Println("FIREBASE_STORAGE_BUCKET not set - stored image cleanup disabled")
		return NoopStorage{}
	}

	client, err := Init(ctx, bucket)
	if err != nil {
		log.Printf("Warning: %v - stored image cleanup disabled", err)
		return NoopStorage{}
	}
	return client
}

// RemoveStoredImage deletes the object behind url when it lives in the client's
// bucket. URLs pointing anywhere else are left alone and reported as not removed.
func RemoveStoredImage(ctx context.Context, client StorageClient, url string) (bool, error) {
	bucket, objectPath, err := utils.ParseStorageURL(url)
	if err != nil || bucket != client.Bucket() {
		return false, nil
	}
	if err := client.DeleteFile(ctx, objectPath); err != nil {
		return false, err
	}
	return true, nil
}
