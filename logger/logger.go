package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Production environments get the JSON
// encoder; everything else gets the human-readable development console.
func New(ambiente string) (*zap.Logger, error) {
	if ambiente == "producao" || ambiente == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
