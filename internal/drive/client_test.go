package drive

import (
	"testing"
	"time"

	drive "google.golang.org/api/drive/v3"
)

func TestConvertToFileInfo(t *testing.T) {
	createdTime := "2023-01-01T10:00:00Z"
	modifiedTime := "2023-01-02T15:30:00Z"

	driveFile := &drive.File{
		Id:           "file123",
		Name:         "test.pdf",
		MimeType:     "application/pdf",
		Size:         1024,
		CreatedTime:  createdTime,
		ModifiedTime: modifiedTime,
		WebViewLink:  "https://drive.google.com/file/d/file123/view",
		Parents:      []string{"parent1", "parent2"},
		Shared:       true,
		Owners: []*drive.User{
			{
				DisplayName:  "Test User",
				EmailAddress: "test@example.com",
			},
		},
	}

	fileInfo := convertToFileInfo(driveFile)

	if fileInfo.ID != "file123" {
		t.Errorf("Expected ID file123, got %s", fileInfo.ID)
	}
	if fileInfo.Name != "test.pdf" {
		t.Errorf("Expected Name test.pdf, got %s", fileInfo.Name)
	}
	if fileInfo.MimeType != "application/pdf" {
		t.Errorf("Expected MimeType application/pdf, got %s", fileInfo.MimeType)
	}
	if fileInfo.Size != 1024 {
		t.Errorf("Expected Size 1024, got %d", fileInfo.Size)
	}
	if len(fileInfo.Parents) != 2 {
		t.Errorf("Expected 2 parents, got %d", len(fileInfo.Parents))
	}
	if !fileInfo.Shared {
		t.Error("Expected Shared to be true")
	}

	wantCreated, _ := time.Parse(time.RFC3339, createdTime)
	if !fileInfo.CreatedTime.Equal(wantCreated) {
		t.Errorf("Expected CreatedTime %v, got %v", wantCreated, fileInfo.CreatedTime)
	}
	wantModified, _ := time.Parse(time.RFC3339, modifiedTime)
	if !fileInfo.ModifiedTime.Equal(wantModified) {
		t.Errorf("Expected ModifiedTime %v, got %v", wantModified, fileInfo.ModifiedTime)
	}

	if len(fileInfo.Owners) != 1 {
		t.Fatalf("Expected 1 owner, got %d", len(fileInfo.Owners))
	}
	if fileInfo.Owners[0].EmailAddress != "test@example.com" {
		t.Errorf("Expected owner email test@example.com, got %s", fileInfo.Owners[0].EmailAddress)
	}
}

func TestConvertToFileInfoMinimal(t *testing.T) {
	fileInfo := convertToFileInfo(&drive.File{Id: "f1", Name: "empty"})

	if fileInfo.ID != "f1" || fileInfo.Name != "empty" {
		t.Errorf("unexpected conversion: %+v", fileInfo)
	}
	if !fileInfo.CreatedTime.IsZero() {
		t.Errorf("Expected zero CreatedTime, got %v", fileInfo.CreatedTime)
	}
	if len(fileInfo.Owners) != 0 {
		t.Errorf("Expected no owners, got %d", len(fileInfo.Owners))
	}
}
