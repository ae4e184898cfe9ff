package repositories

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Typed persistence error kinds produced at the repository boundary.
// Controllers match these exhaustively when translating to HTTP responses.
var (
	// ErrNaoEncontrado: no row matches the given id or lookup value.
	ErrNaoEncontrado = errors.New("registro não encontrado")
	// ErrConflito: a unique constraint was violated.
	ErrConflito = errors.New("registro já existe")
	// ErrViolacaoFK: an insert or update references a missing parent row.
	ErrViolacaoFK = errors.New("registro relacionado não encontrado")
	// ErrDependencia: a delete is blocked by dependent rows.
	ErrDependencia = errors.New("registro possui registros associados")
)

// Postgres SQLSTATE codes for the constraint classes we discriminate.
const (
	codigoUnicidade        = "23505"
	codigoChaveEstrangeira = "23503"
)

// traduzErro maps a raw persistence error to one of the typed kinds.
// The 23503 class means a missing parent on insert/update but a blocked
// delete on removal, so the caller states which operation ran.
func traduzErro(err error, remocao bool) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNaoEncontrado
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codigoUnicidade:
			return fmt.Errorf("%w: %s", ErrConflito, pgErr.ConstraintName)
		case codigoChaveEstrangeira:
			if remocao {
				return fmt.Errorf("%w: %s", ErrDependencia, pgErr.ConstraintName)
			}
			return fmt.Errorf("%w: %s", ErrViolacaoFK, pgErr.ConstraintName)
		}
	}
	return err
}
