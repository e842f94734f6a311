package corebank

import (
	"net/http"

	"vaultline.io/infrastructure/logger"
)

func (cb *CoreBankService) Login(body LoginRequest) (*AuthResponse, error) {
	response, statusCode, err := cb.Network.Post("/api/auth/login", nil, body)
	if err != nil {
		logger.Error("could not complete login request to core backend", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if *statusCode != http.StatusOK {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[AuthResponse](*response)
}

func (cb *CoreBankService) Register(body RegisterRequest) (*AuthResponse, error) {
	response, statusCode, err := cb.Network.Post("/api/auth/register", nil, body)
	if err != nil {
		logger.Error("could not complete registration request to core backend", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	if *statusCode != http.StatusOK && *statusCode != http.StatusCreated {
		return nil, upstreamFailure(*statusCode, *response)
	}
	return decode[AuthResponse](*response)
}
