package firestore

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient owns the connection to the alerts database
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient connects with the credentials file when it exists, otherwise with
// application default credentials (Cloud Run, gcloud auth)
func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*FirestoreClient, error) {
	if projectID == "" {
		return nil, fmt.Errorf("firestore project id is required")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		if _, err := os.Stat(credentialsFile); err != nil {
			log.Printf("⚠️ Credentials file not found: %s, falling back to default authentication", credentialsFile)
		} else {
			log.Printf("📄 Using credentials file: %s", credentialsFile)
			opts = append(opts, option.WithCredentialsFile(credentialsFile))
		}
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	log.Printf("✅ Firestore client initialized for project: %s", projectID)
	return &FirestoreClient{client: client}, nil
}

func (fc *FirestoreClient) Close() error {
	return fc.client.Close()
}

func (fc *FirestoreClient) GetClient() *firestore.Client {
	return fc.client
}
