package corebank

import (
	"fmt"
	"net/http"
)

func (cb *CoreBankService) GetPendingOperations(sid string) ([]Operation, error) {
	response, statusCode, err := cb.Network.Get("/api/agent/operations/pending", cb.bearerHeaders(sid))
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

func (cb *CoreBankService) ApproveOperation(sid string, operationID string, comment *string) (*Operation, error) {
	return cb.validateOperation(sid, operationID, "approve", comment)
}

func (cb *CoreBankService) RejectOperation(sid string, operationID string, comment *string) (*Operation, error) {
	return cb.validateOperation(sid, operationID, "reject", comment)
}

func (cb *CoreBankService) validateOperation(sid string, operationID string, verdict string, comment *string) (*Operation, error) {
	body := OperationValidationRequest{Comment: comment}
	response, statusCode, err := cb.Network.Put(fmt.Sprintf("/api/agent/operations/%s/%s", operationID, verdict), cb.bearerHeaders(sid), body)
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[Operation](*response)
}
