package controller

import (
	"net/http"
	"testing"

	"vaultline.io/application/interfaces"
	"vaultline.io/infrastructure/session"

	fileupload "vaultline.io/infrastructure/file_upload"
)

type stubUploader struct {
	blobExists  bool
	downloadURL string
	checked     []string
}

func (s *stubUploader) GenerateDownloadURL(fileName string) (*string, error) {
	return &s.downloadURL, nil
}

func (s *stubUploader) GenerateUploadURL(fileName string) (*string, error) {
	return &s.downloadURL, nil
}

func (s *stubUploader) CheckFileExists(fileName string) (bool, error) {
	s.checked = append(s.checked, fileName)
	return s.blobExists, nil
}

func (s *stubUploader) DeleteFile(fileName string) error {
	return nil
}

func swapUploader(t *testing.T, uploader *stubUploader) {
	t.Helper()
	previous := fileupload.FileUploader
	fileupload.FileUploader = uploader
	t.Cleanup(func() { fileupload.FileUploader = previous })
}

func TestDownloadServesSignedURLForArchivedDocument(t *testing.T) {
	upstreamCalled := false
	setUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		upstreamCalled = true
	})
	uploader := &stubUploader{blobExists: true, downloadURL: "https://blobs.example/doc?sig=abc"}
	swapUploader(t, uploader)

	ginCtx, recorder := newGinContext(t)
	DownloadOperationDocument(&interfaces.ApplicationContext[any]{Ctx: ginCtx, SessionID: "sid-1"}, "42")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	envelope := decodeEnvelope(t, recorder)
	if envelope.Body["url"] != uploader.downloadURL {
		t.Errorf("url = %v, want %q", envelope.Body["url"], uploader.downloadURL)
	}
	if len(uploader.checked) != 1 || uploader.checked[0] != "operations/42/document" {
		t.Errorf("checked blobs = %v, want the operation's document blob", uploader.checked)
	}
	if upstreamCalled {
		t.Error("archived document must not hit the backend")
	}
}

func TestDownloadFallsBackToProxyWhenBlobAbsent(t *testing.T) {
	store := setUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 stub"))
	})
	store.SetTokens("sid-1", session.TokenPayload{AccessToken: "token"})
	swapUploader(t, &stubUploader{blobExists: false, downloadURL: "https://blobs.example/never"})

	ginCtx, recorder := newGinContext(t)
	DownloadOperationDocument(&interfaces.ApplicationContext[any]{Ctx: ginCtx, SessionID: "sid-1"}, "42")

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	if recorder.Body.String() != "%PDF-1.4 stub" {
		t.Errorf("body = %q, want the proxied document bytes", recorder.Body.String())
	}
}
