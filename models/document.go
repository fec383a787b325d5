package models

import (
	"context"
	"time"

	"github.com/smoothestguy/commandx_backend/config"
	"github.com/smoothestguy/commandx_backend/utils"
)

// Document is a metadata row for a file attached to another record
// (payment item, work order, project). The object store that holds the
// bytes is an external collaborator; only the URL is kept here.
type Document struct {
	ID            int       `gorm:"primary_key" json:"id"`
	ReferenceType string    `gorm:"size:100;index:idx_doc_ref" json:"reference_type"`
	ReferenceId   int       `gorm:"index:idx_doc_ref" json:"reference_id"`
	FileName      string    `gorm:"size:255;not null" json:"file_name" binding:"required"`
	DocumentUrl   string    `gorm:"size:255;not null" json:"document_url" binding:"required"`
	ContentType   string    `gorm:"size:100" json:"content_type"`
	UploadedBy    int       `json:"uploaded_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewDocument struct {
	ReferenceType string `json:"reference_type" binding:"required"`
	ReferenceId   int    `json:"reference_id" binding:"required"`
	FileName      string `json:"file_name" binding:"required"`
	DocumentUrl   string `json:"document_url" binding:"required"`
	ContentType   string `json:"content_type"`
}

func CreateDocument(ctx context.Context, input *NewDocument) (*Document, error) {
	if input.FileName == "" || input.DocumentUrl == "" {
		return nil, utils.NewValidationError("file name and document url are required")
	}

	// uploader comes from the actor context, never from the payload
	uploadedBy, _ := utils.GetUserIdFromContext(ctx)

	document := Document{
		ReferenceType: input.ReferenceType,
		ReferenceId:   input.ReferenceId,
		FileName:      input.FileName,
		DocumentUrl:   input.DocumentUrl,
		ContentType:   input.ContentType,
		UploadedBy:    uploadedBy,
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&document).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

func DeleteDocument(ctx context.Context, id int) (*Document, error) {
	document, err := utils.FetchModel[Document](ctx, id)
	if err != nil {
		return nil, err
	}
	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(document).Error; err != nil {
		return nil, err
	}
	return document, nil
}

func ListDocuments(ctx context.Context, referenceType string, referenceId int) ([]*Document, error) {
	db := config.GetDB()
	var documents []*Document
	if err := db.WithContext(ctx).
		Where("reference_type = ? AND reference_id = ?", referenceType, referenceId).
		Order("id").Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}
