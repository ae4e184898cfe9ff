package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/marcosmapl/studium-backend-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// novoServidorDeTeste mounts the CRUD routes of one lookup table over a mocked
// connection. The lookup keeps the generated SQL small enough to assert on.
func novoServidorDeTeste(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
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

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	registrarLookup[models.EstadoVeiculo](api, gdb, zap.NewNop(), "estadosVeiculo", "Estado de veículo", false)
	NewVeiculoController(gdb, zap.NewNop()).RegisterRoutes(api)
	return r, mock
}

func requisitar(r *gin.Engine, metodo, caminho, corpo string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(metodo, caminho, strings.NewReader(corpo))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCriarSemCamposObrigatorios(t *testing.T) {
	r, _ := novoServidorDeTeste(t)

	w := requisitar(r, http.MethodPost, "/api/estadosVeiculo", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"error": "Campos obrigatórios ausentes: descricao",
		"missingFields": ["descricao"]
	}`, w.Body.String())
}

func TestCriarComCampoVazio(t *testing.T) {
	r, _ := novoServidorDeTeste(t)

	w := requisitar(r, http.MethodPost, "/api/estadosVeiculo", `{"descricao": ""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "descricao")
}

func TestCriarComSucesso(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectQuery(`INSERT INTO "estados_veiculo"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	w := requisitar(r, http.MethodPost, "/api/estadosVeiculo", `{"descricao": "NOVO"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.Contains(t, w.Body.String(), `"descricao":"NOVO"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCriarDuplicado(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectQuery(`INSERT INTO "estados_veiculo"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_estados_veiculo_descricao"})

	w := requisitar(r, http.MethodPost, "/api/estadosVeiculo", `{"descricao": "NOVO"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error": "Estado de veículo já existe"}`, w.Body.String())
}

func TestCriarComFKAusenteNomeiaEntidade(t *testing.T) {
	corpo := `{
		"placa": "ABC1D23", "anoFabricacao": 2020, "modeloId": 1,
		"tipoCombustivelId": 9, "tipoCambioId": 1,
		"estadoVeiculoId": 1, "corVeiculoId": 1
	}`

	casos := []struct {
		nome       string
		constraint string
		mensagem   string
	}{
		{"combustível inexistente", "fk_veiculos_TipoCombustivel", "Tipo de combustível não encontrado"},
		{"combustível inexistente em snake case", "fk_veiculos_tipo_combustivel", "Tipo de combustível não encontrado"},
		{"cor inexistente", "fk_veiculos_CorVeiculo", "Cor de veículo não encontrada"},
		{"constraint desconhecida", "fk_misterio", "Registro relacionado não encontrado"},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			r, mock := novoServidorDeTeste(t)
			mock.ExpectQuery(`INSERT INTO "veiculos"`).
				WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: caso.constraint})

			w := requisitar(r, http.MethodPost, "/api/veiculos", corpo)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "`+caso.mensagem+`"}`, w.Body.String())
		})
	}
}

func TestCriarComCorpoInvalido(t *testing.T) {
	r, _ := novoServidorDeTeste(t)

	w := requisitar(r, http.MethodPost, "/api/estadosVeiculo", `{descricao`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Corpo da requisição inválido"}`, w.Body.String())
}

func TestListarColecaoVazia(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" ORDER BY descricao ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"}))

	w := requisitar(r, http.MethodGet, "/api/estadosVeiculo", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBuscarPorIDNaoNumerico(t *testing.T) {
	r, _ := novoServidorDeTeste(t)

	w := requisitar(r, http.MethodGet, "/api/estadosVeiculo/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Identificador inválido"}`, w.Body.String())
}

func TestBuscarPorIDInexistente(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"}))

	w := requisitar(r, http.MethodGet, "/api/estadosVeiculo/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Estado de veículo não encontrado"}`, w.Body.String())
}

func TestAtualizarMesclaCamposParciais(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	agora := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"}).
			AddRow(1, "NOVO", agora, agora))
	mock.ExpectExec(`UPDATE "estados_veiculo" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := requisitar(r, http.MethodPut, "/api/estadosVeiculo/1", `{"descricao": "USADO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"descricao":"USADO"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarIgnoraIDDoCorpo(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	agora := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"}).
			AddRow(1, "NOVO", agora, agora))
	mock.ExpectExec(`UPDATE "estados_veiculo" SET`).
		WithArgs("USADO", sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// the body tries to retarget the save to row 2; the path id must win
	w := requisitar(r, http.MethodPut, "/api/estadosVeiculo/1", `{"id": 2, "descricao": "USADO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtualizarInexistente(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectQuery(`SELECT \* FROM "estados_veiculo" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "descricao", "criado_em", "atualizado_em"}))

	w := requisitar(r, http.MethodPut, "/api/estadosVeiculo/99", `{"descricao": "USADO"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	// no UPDATE may have been issued for the missing record
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoverComSucesso(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectExec(`DELETE FROM "estados_veiculo"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := requisitar(r, http.MethodDelete, "/api/estadosVeiculo/1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRemoverBloqueadoPorDependentes(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectExec(`DELETE FROM "estados_veiculo"`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "fk_veiculos_estado"})

	w := requisitar(r, http.MethodDelete, "/api/estadosVeiculo/1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Estado de veículo possui registros associados"}`, w.Body.String())
}

func TestRemoverInexistente(t *testing.T) {
	r, mock := novoServidorDeTeste(t)

	mock.ExpectExec(`DELETE FROM "estados_veiculo"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := requisitar(r, http.MethodDelete, "/api/estadosVeiculo/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Estado de veículo não encontrado"}`, w.Body.String())
}
