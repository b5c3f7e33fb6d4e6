package helper

import (
	"camp_registration/model"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary(cloudName, apiKey, apiSecret string) (*cloudinary.Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return cld, nil
}

// ProofArchive keeps a copy of every uploaded payment proof.
type ProofArchive struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewProofArchive returns nil when no cloud is configured; a nil archive skips uploads.
func NewProofArchive(cloudName, apiKey, apiSecret, folder string) *ProofArchive {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Cloudinary not configured, payment proofs will not be archived")
		return nil
	}
	cld, err := InitCloudinary(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Printf("%v", err)
		return nil
	}
	return &ProofArchive{cld: cld, folder: folder}
}

func (a *ProofArchive) Upload(ctx context.Context, ticket model.Ticket, filename string, file io.Reader) (string, error) {
	if a == nil {
		return "", nil
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       a.folder,
		PublicID:     ProofPublicID(ticket, filename),
		ResourceType: "auto",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("archive proof for %s: %w", ticket.TicketId, err)
	}
	return result.SecureURL, nil
}
