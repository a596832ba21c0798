package commands

import (
	"fmt"
	"os"

	"github.com/obolus/obolus"
)

// loadSigningKey resolves the two mutually exclusive key inputs: a PEM
// file path or a base64 compact string. The encoding is chosen by the
// flag the caller set, never sniffed from the input.
func loadSigningKey(pemPath, b64 string) (obolus.KeyMaterial, error) {
	switch {
	case pemPath != "" && b64 != "":
		return obolus.KeyMaterial{}, fmt.Errorf("--key and --key-base64 are mutually exclusive")
	case pemPath != "":
		data, err := os.ReadFile(pemPath)
		if err != nil {
			return obolus.KeyMaterial{}, fmt.Errorf("failed to read key file: %w", err)
		}
		return obolus.ParseSigningKeyPEM(data)
	case b64 != "":
		return obolus.ParseSigningKeyBase64(b64)
	default:
		return obolus.KeyMaterial{}, fmt.Errorf("a key is required (--key or --key-base64)")
	}
}

func loadVerificationKey(pemPath, b64 string) (obolus.KeyMaterial, error) {
	switch {
	case pemPath != "" && b64 != "":
		return obolus.KeyMaterial{}, fmt.Errorf("--key and --key-base64 are mutually exclusive")
	case pemPath != "":
		data, err := os.ReadFile(pemPath)
		if err != nil {
			return obolus.KeyMaterial{}, fmt.Errorf("failed to read key file: %w", err)
		}
		return obolus.ParseVerificationKeyPEM(data)
	case b64 != "":
		return obolus.ParseVerificationKeyBase64(b64)
	default:
		return obolus.KeyMaterial{}, fmt.Errorf("a key is required (--key or --key-base64)")
	}
}
