package corebank

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

func (cb *CoreBankService) GetAccountInfo(sid string) (*AccountInfo, error) {
	response, statusCode, err := cb.Network.Get("/api/client/operations/account", cb.bearerHeaders(sid))
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[AccountInfo](*response)
}

func (cb *CoreBankService) GetOperations(sid string) ([]Operation, error) {
	response, statusCode, err := cb.Network.Get("/api/client/operations", cb.bearerHeaders(sid))
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	operations, err := decode[[]Operation](*response)
	if err != nil {
		return nil, err
	}
	return *operations, nil
}

func (cb *CoreBankService) CreateOperation(sid string, body CreateOperationRequest) (*Operation, error) {
	response, statusCode, err := cb.Network.Post("/api/client/operations", cb.bearerHeaders(sid), body)
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusCreated {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[Operation](*response)
}

// GetOperationDocument relays the justification document as an opaque
// blob together with its content type.
func (cb *CoreBankService) GetOperationDocument(sid string, operationID string) ([]byte, string, error) {
	response, statusCode, contentType, err := cb.Network.GetBlob(fmt.Sprintf("/api/client/operations/%s/document", operationID), cb.bearerHeaders(sid))
	if err != nil {
		return nil, "", err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, "", err
	}
	if *statusCode != http.StatusOK {
		return nil, "", upstreamFailure(*statusCode, *response)
	}
	return *response, contentType, nil
}

func (cb *CoreBankService) UploadOperationDocument(sid string, operationID string, fileName string, file io.Reader) error {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	response, statusCode, err := cb.Network.PostRaw(fmt.Sprintf("/api/client/operations/%s/document", operationID), cb.bearerHeaders(sid), &buffer, writer.FormDataContentType())
	if err != nil {
		return err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusCreated {
		return upstreamFailure(*statusCode, *response)
	}
	return nil
}
