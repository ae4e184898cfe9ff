package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBancoDeTeste(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func linhasDeEstado(ids ...uint) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"})
	for _, id := range ids {
		rows.AddRow(id, "NOVO", time.Now(), time.Now())
	}
	return rows
}

func TestCreateRetornaConflitoEmUnicidadeViolada(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{OrdemPadrao: "descricao ASC"})

	mock.ExpectQuery(`INSERT INTO "estados_veiculo"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_estados_veiculo_descricao"})

	err := repo.Create(context.Background(), &models.EstadoVeiculo{Descricao: "NOVO"})
	assert.ErrorIs(t, err, ErrConflito)
}

func TestCreatePreencheChavePrimaria(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{OrdemPadrao: "descricao ASC"})

	mock.ExpectQuery(`INSERT INTO "estados_veiculo"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	estado := models.EstadoVeiculo{Descricao: "NOVO"}
	require.NoError(t, repo.Create(context.Background(), &estado))
	assert.Equal(t, uint(42), estado.ID)
}

func TestFindAllAplicaOrdemPadrao(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{OrdemPadrao: "descricao ASC"})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" ORDER BY descricao ASC`).
		WillReturnRows(linhasDeEstado(1, 2))

	registros, err := repo.FindAll(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Len(t, registros, 2)
}

func TestFindAllComPaginacao(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{OrdemPadrao: "descricao ASC"})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" ORDER BY descricao ASC LIMIT`).
		WillReturnRows(linhasDeEstado(3))

	registros, err := repo.FindAll(context.Background(), ListOptions{Limit: 1, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, registros, 1)
}

func TestFindByIDInexistente(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(linhasDeEstado())

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestFindByUniqueField(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE descricao = \$1`).
		WillReturnRows(linhasDeEstado(7))

	registro, err := repo.FindByUniqueField(context.Background(), "descricao", "NOVO")
	require.NoError(t, err)
	assert.Equal(t, uint(7), registro.ID)
}

func TestFindManyComCondicao(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{OrdemPadrao: "descricao ASC"})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE descricao ILIKE \$1 ORDER BY descricao ASC`).
		WillReturnRows(linhasDeEstado(1))

	registros, err := repo.FindMany(context.Background(), "descricao ILIKE ?", []any{"%NO%"}, nil)
	require.NoError(t, err)
	assert.Len(t, registros, 1)
}

func TestUpdateMesclaCampos(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(linhasDeEstado(5))
	mock.ExpectExec(`UPDATE "estados_veiculo" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	corpo := []byte(`{"descricao":"USADO"}`)
	registro, err := repo.Update(context.Background(), 5, func(e *models.EstadoVeiculo) error {
		return json.Unmarshal(corpo, e)
	})
	require.NoError(t, err)
	assert.Equal(t, "USADO", registro.Descricao)
	assert.Equal(t, uint(5), registro.ID)
}

func TestUpdateInexistenteNaoCriaRegistro(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(linhasDeEstado())

	_, err := repo.Update(context.Background(), 99, func(e *models.EstadoVeiculo) error { return nil })
	assert.ErrorIs(t, err, ErrNaoEncontrado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteInexistente(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectExec(`DELETE FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestDeleteBloqueadoPorDependentes(t *testing.T) {
	gdb, mock := novoBancoDeTeste(t)
	repo := New[models.EstadoVeiculo](gdb, Config{})

	mock.ExpectExec(`DELETE FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_veiculos_estado"})

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDependencia)
}
