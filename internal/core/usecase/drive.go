package usecase

import (
	"context"
	"log/slog"

	"github.com/azocr/boq-insight/internal/core/domain"
	"github.com/azocr/boq-insight/internal/core/ports"
)

const driveListLimit = 10

// demoFiles is served when no remote file store is configured or the remote
// listing fails.
var demoFiles = []domain.DriveFile{
	{
		ID:          "demo-1",
		Name:        "BOQ-demo.pdf",
		MimeType:    "application/pdf",
		Size:        "324000",
		WebViewLink: "#",
	},
	{
		ID:          "demo-2",
		Name:        "materials.xlsx",
		MimeType:    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Size:        "128000",
		WebViewLink: "#",
	},
}

// DriveUseCase lists remote file metadata or a fixed demo set.
type DriveUseCase struct {
	store ports.FileStore
}

// NewDriveUseCase accepts a nil store, which pins the listing to demo files.
func NewDriveUseCase(store ports.FileStore) *DriveUseCase {
	return &DriveUseCase{store: store}
}

func (uc *DriveUseCase) List(ctx context.Context) (domain.DriveListing, error) {
	if uc.store == nil {
		return uc.fallbackListing(), nil
	}

	files, err := uc.store.ListFiles(ctx, driveListLimit)
	if err != nil {
		slog.Warn("remote file listing failed, serving demo files", "error", err)
		return uc.fallbackListing(), nil
	}
	return domain.DriveListing{Files: files, UsedFallback: false}, nil
}

func (uc *DriveUseCase) fallbackListing() domain.DriveListing {
	files := make([]domain.DriveFile, len(demoFiles))
	copy(files, demoFiles)
	return domain.DriveListing{Files: files, UsedFallback: true}
}
