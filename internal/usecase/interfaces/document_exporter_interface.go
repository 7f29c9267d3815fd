package interfaces

import "proposalcraft/internal/domain/render"

// IDocumentExporter turns a rendered document into a downloadable file.
type IDocumentExporter interface {
	Export(doc render.Document) (render.ExportedDocument, error)
}
