// pkg/config/target.go
package config

import (
	"errors"
	"os"
)

// resolveDatabaseTarget selects the database to import into. Production
// imports prefer PRODUCTION_DATABASE_URL and fall back to DATABASE_URL;
// development imports require DATABASE_URL.
func resolveDatabaseTarget() (string, bool, error) {
	production := getEnvAsBool("IMPORT_TO_PRODUCTION", false)

	if production {
		if url := os.Getenv("PRODUCTION_DATABASE_URL"); url != "" {
			return url, true, nil
		}
		if url := os.Getenv("DATABASE_URL"); url != "" {
			return url, true, nil
		}
		return "", true, errors.New("PRODUCTION_DATABASE_URL or DATABASE_URL environment variable is required for production imports")
	}

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return "", false, errors.New("DATABASE_URL environment variable is required")
	}
	return url, false, nil
}
