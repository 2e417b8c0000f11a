// Package document contains stored supporting documents (deposit receipts,
// project images). Content lives in the database so document writes share
// the transaction of the workflow that stores them.
package document

import (
	"fmt"
	"time"

	"crowdfund/internal/shared/biztime"
)

// MaxSize bounds uploaded document content.
const MaxSize = 10 << 20 // 10 MiB

type Document struct {
	id            uint
	name          string
	contentType   string
	size          int
	data          []byte
	createdByUUID string
	createdAt     time.Time
}

// SaveRequest carries an uploaded file into the document store.
type SaveRequest struct {
	Name          string
	ContentType   string
	Data          []byte
	CreatedByUUID string
}

func NewDocument(req SaveRequest) (*Document, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("document name is required")
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("document content is required")
	}
	if len(req.Data) > MaxSize {
		return nil, fmt.Errorf("document exceeds maximum size of %d bytes", MaxSize)
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Document{
		name:          req.Name,
		contentType:   contentType,
		size:          len(req.Data),
		data:          req.Data,
		createdByUUID: req.CreatedByUUID,
		createdAt:     biztime.NowUTC(),
	}, nil
}

func (d *Document) SetID(id uint) { d.id = id }

func (d *Document) ID() uint              { return d.id }
func (d *Document) Name() string          { return d.name }
func (d *Document) ContentType() string   { return d.contentType }
func (d *Document) Size() int             { return d.size }
func (d *Document) Data() []byte          { return d.data }
func (d *Document) CreatedByUUID() string { return d.createdByUUID }
func (d *Document) CreatedAt() time.Time  { return d.createdAt }

// ReconstructDocument creates a Document from persistence.
func ReconstructDocument(
	id uint,
	name string,
	contentType string,
	size int,
	data []byte,
	createdByUUID string,
	createdAt time.Time,
) *Document {
	return &Document{
		id:            id,
		name:          name,
		contentType:   contentType,
		size:          size,
		data:          data,
		createdByUUID: createdByUUID,
		createdAt:     createdAt,
	}
}
