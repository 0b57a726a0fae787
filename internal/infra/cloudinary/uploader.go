package cloudinary

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"

	cldsdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores generated invoice PDFs as raw assets in the invoices
// folder and hands back a public HTTPS URL.
type Uploader struct {
	cloudName string
	apiKey    string
	apiSecret string

	once    sync.Once
	cld     *cldsdk.Cloudinary
	initErr error
}

func NewUploaderFromEnv() *Uploader {
	return &Uploader{
		cloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		apiKey:    os.Getenv("CLOUDINARY_API_KEY"),
		apiSecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}

func (u *Uploader) client() (*cldsdk.Cloudinary, error) {
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return nil, errors.New("Cloudinary env vars missing: CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET")
	}
	u.once.Do(func() {
		u.cld, u.initErr = cldsdk.NewFromParams(u.cloudName, u.apiKey, u.apiSecret)
	})
	return u.cld, u.initErr
}

func (u *Uploader) UploadInvoicePDF(ctx context.Context, pdf []byte, publicID string) (string, error) {
	cld, err := u.client()
	if err != nil {
		return "", err
	}

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(pdf), uploader.UploadParams{
		Folder:       "invoices",
		PublicID:     publicID,
		ResourceType: "raw",
		Format:       "pdf",
		Overwrite:    api.Bool(true),
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}
