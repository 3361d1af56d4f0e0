package dotenv

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads .env from the current working directory. Variables
// already present in the environment take precedence over file values.
func LoadDotEnvs() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		// No .env is fine, the environment may be fully configured already.
		return nil
	}
	return godotenv.Load()
}

// LoadDotEnvsInTests walks up from the test's working directory looking for
// a .env at the repository root. Tests run with the package directory as cwd,
// so a plain godotenv.Load() would miss it.
func LoadDotEnvsInTests() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		candidate := filepath.Join(dir, ".env")
		if _, err := os.Stat(candidate); err == nil {
			return godotenv.Load(candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}
