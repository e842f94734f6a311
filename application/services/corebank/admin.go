package corebank

import (
	"fmt"
	"net/http"
	"net/url"
)

// forced approvals carry this comment when the administrator gave
// none, matching what the backend has always recorded
const defaultForceApproveComment = "Approbation forcée par l'administrateur"

func (cb *CoreBankService) ListUsers(sid string) ([]UserResponse, error) {
	response, statusCode, err := cb.Network.Get("/api/admin/users", cb.bearerHeaders(sid))
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	users, err := decode[[]UserResponse](*response)
	if err != nil {
		return nil, err
	}
	return *users, nil
}

func (cb *CoreBankService) CreateUser(sid string, body UserRequest) (*UserResponse, error) {
	response, statusCode, err := cb.Network.Post("/api/admin/users", cb.bearerHeaders(sid), body)
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusCreated {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[UserResponse](*response)
}

func (cb *CoreBankService) UpdateUser(sid string, userID string, body UserRequest) (*UserResponse, error) {
	response, statusCode, err := cb.Network.Put(fmt.Sprintf("/api/admin/users/%s", userID), cb.bearerHeaders(sid), body)
	if err != nil {
		return nil, err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[UserResponse](*response)
}

func (cb *CoreBankService) ActivateUser(sid string, userID string) error {
	return cb.setUserState(sid, userID, "activate")
}

func (cb *CoreBankService) SuspendUser(sid string, userID string) error {
	return cb.setUserState(sid, userID, "suspend")
}

func (cb *CoreBankService) setUserState(sid string, userID string, state string) error {
	response, statusCode, err := cb.Network.Put(fmt.Sprintf("/api/admin/users/%s/%s", userID, state), cb.bearerHeaders(sid), map[string]any{})
	if err != nil {
		return err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusNoContent {
		return upstreamFailure(*statusCode, *response)
	}
	return nil
}

func (cb *CoreBankService) DeleteUser(sid string, userID string) error {
	response, statusCode, err := cb.Network.Delete(fmt.Sprintf("/api/admin/users/%s", userID), cb.bearerHeaders(sid))
	if err != nil {
		return err
	}
	if err := cb.checkAuthorized(sid, *statusCode, *response); err != nil {
		return err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusNoContent {
		return upstreamFailure(*statusCode, *response)
	}
	return nil
}

func (cb *CoreBankService) ListAllOperations(sid string, status *string) ([]Operation, error) {
	path := "/api/admin/operations"
	if status != nil && *status != "" {
		path = fmt.Sprintf("%s?status=%s", path, url.QueryEscape(*status))
	}
	response, statusCode, err := cb.Network.Get(path, cb.bearerHeaders(sid))
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

// ForceApprove and ForceReject send the comment as a bare JSON string
// body, the shape the backend's force endpoints have always consumed.
func (cb *CoreBankService) ForceApprove(sid string, operationID string, comment *string) (*Operation, error) {
	body := defaultForceApproveComment
	if comment != nil && *comment != "" {
		body = *comment
	}
	return cb.forceValidate(sid, operationID, "force-approve", body)
}

func (cb *CoreBankService) ForceReject(sid string, operationID string, comment string) (*Operation, error) {
	return cb.forceValidate(sid, operationID, "force-reject", comment)
}

func (cb *CoreBankService) forceValidate(sid string, operationID string, verdict string, comment string) (*Operation, error) {
	response, statusCode, err := cb.Network.Put(fmt.Sprintf("/api/admin/operations/%s/%s", operationID, verdict), cb.bearerHeaders(sid), comment)
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
