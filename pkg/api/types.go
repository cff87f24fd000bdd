package api

import "github.com/segmentio/ksuid"

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port           int
	Bind           string
	APIKey         string
	DataDir        string
	MaxStreamBytes int64
}

// UploadResponse summarizes a freshly stored stream
type UploadResponse struct {
	ID         string `json:"id"`
	Bytes      int    `json:"bytes"`
	Records    int    `json:"records"`
	Objects    int    `json:"objects"`
	Unresolved int    `json:"unresolved"`
}

// IStreamStore defines the interface for stream persistence
type IStreamStore interface {
	Put(data []byte) (ksuid.KSUID, error)
	Get(id ksuid.KSUID) ([]byte, error)
	Delete(id ksuid.KSUID) error
	List() ([]ksuid.KSUID, error)
}
