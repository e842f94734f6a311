package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkController is a thin JSON client for a single upstream base
// URL. Responses are returned as raw bytes with the status code so
// callers decide how to decode and how to treat non-2xx statuses.
type NetworkController struct {
	BaseUrl string
	Client  *http.Client
}

func (network *NetworkController) httpClient() *http.Client {
	if network.Client == nil {
		network.Client = &http.Client{Timeout: 30 * time.Second}
	}
	return network.Client
}

func (network *NetworkController) Get(path string, headers *map[string]string) (*[]byte, *int, error) {
	return network.do(http.MethodGet, path, headers, nil, "")
}

func (network *NetworkController) Post(path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}
	return network.do(http.MethodPost, path, headers, bytes.NewReader(payload), "application/json")
}

func (network *NetworkController) Put(path string, headers *map[string]string, body any) (*[]byte, *int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}
	return network.do(http.MethodPut, path, headers, bytes.NewReader(payload), "application/json")
}

func (network *NetworkController) Delete(path string, headers *map[string]string) (*[]byte, *int, error) {
	return network.do(http.MethodDelete, path, headers, nil, "")
}

// PostRaw forwards a prebuilt body (multipart uploads) without JSON
// encoding.
func (network *NetworkController) PostRaw(path string, headers *map[string]string, body io.Reader, contentType string) (*[]byte, *int, error) {
	return network.do(http.MethodPost, path, headers, body, contentType)
}

// GetBlob fetches a binary payload and reports its content type so it
// can be relayed downstream unchanged.
func (network *NetworkController) GetBlob(path string, headers *map[string]string) (*[]byte, *int, string, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", network.BaseUrl, path), nil)
	if err != nil {
		return nil, nil, "", err
	}
	applyHeaders(req, headers)
	res, err := network.httpClient().Do(req)
	if err != nil {
		return nil, nil, "", err
	}
	defer res.Body.Close()
	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, "", err
	}
	return &responseBody, &res.StatusCode, res.Header.Get("Content-Type"), nil
}

func (network *NetworkController) do(method string, path string, headers *map[string]string, body io.Reader, contentType string) (*[]byte, *int, error) {
	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", network.BaseUrl, path), body)
	if err != nil {
		return nil, nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	applyHeaders(req, headers)
	res, err := network.httpClient().Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()
	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, err
	}
	return &responseBody, &res.StatusCode, nil
}

func applyHeaders(req *http.Request, headers *map[string]string) {
	if headers == nil {
		return
	}
	for key, value := range *headers {
		req.Header.Set(key, value)
	}
}
