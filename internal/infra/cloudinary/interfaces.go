package cloudinary

import "context"

type UploaderInterface interface {
	UploadInvoicePDF(ctx context.Context, pdf []byte, publicID string) (string, error)
}

var _ UploaderInterface = (*Uploader)(nil)
