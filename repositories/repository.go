package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Config parameterizes a generic repository: the default ordering applied to
// collection reads and the relations eagerly loaded with each record.
// Preload entries use GORM relation paths, so nested entries like
// "Modelo.Marca" are valid.
type Config struct {
	OrdemPadrao string
	Preloads    []string
}

// ListOptions carries the ad hoc limit/offset pagination some collection
// endpoints accept. Zero values mean "no limit" / "no offset".
type ListOptions struct {
	Limit  int
	Offset int
}

// QueryOptions optionally overrides ordering and eager loading on FindMany.
type QueryOptions struct {
	Ordem    string
	Preloads []string
}

// Repository is the uniform data-access facade over one table. Every entity
// repository embeds it, differing only in configuration and extra finders.
type Repository[T any] struct {
	db  *gorm.DB
	cfg Config
}

// New creates a repository bound to the given database handle.
func New[T any](db *gorm.DB, cfg Config) *Repository[T] {
	if cfg.OrdemPadrao == "" {
		cfg.OrdemPadrao = "id ASC"
	}
	return &Repository[T]{db: db, cfg: cfg}
}

// DB returns the underlying database handle.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) comPreloads(tx *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts a new record. Association fields are omitted so only the
// foreign key columns submitted by the caller are persisted.
func (r *Repository[T]) Create(ctx context.Context, entidade *T) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entidade).Error
	return traduzErro(err, false)
}

// FindAll retrieves all records with the default ordering and eager loads.
func (r *Repository[T]) FindAll(ctx context.Context, opts ListOptions) ([]T, error) {
	registros := make([]T, 0)
	tx := r.comPreloads(r.db.WithContext(ctx), r.cfg.Preloads).Order(r.cfg.OrdemPadrao)
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		tx = tx.Offset(opts.Offset)
	}
	if err := tx.Find(&registros).Error; err != nil {
		return nil, traduzErro(err, false)
	}
	return registros, nil
}

// FindByID retrieves one record by primary key.
func (r *Repository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var registro T
	tx := r.comPreloads(r.db.WithContext(ctx), r.cfg.Preloads)
	if err := tx.First(&registro, "id = ?", id).Error; err != nil {
		return nil, traduzErro(err, false)
	}
	return &registro, nil
}

// FindByUniqueField retrieves the first record with an exact value on a
// unique-indexed column. The column name comes from code, never from input.
func (r *Repository[T]) FindByUniqueField(ctx context.Context, coluna string, valor any) (*T, error) {
	var registro T
	tx := r.comPreloads(r.db.WithContext(ctx), r.cfg.Preloads)
	if err := tx.Where(coluna+" = ?", valor).First(&registro).Error; err != nil {
		return nil, traduzErro(err, false)
	}
	return &registro, nil
}

// FindMany retrieves records matching an arbitrary condition, optionally
// overriding ordering and eager loading.
func (r *Repository[T]) FindMany(ctx context.Context, cond string, args []any, opts *QueryOptions) ([]T, error) {
	ordem := r.cfg.OrdemPadrao
	preloads := r.cfg.Preloads
	if opts != nil {
		if opts.Ordem != "" {
			ordem = opts.Ordem
		}
		if opts.Preloads != nil {
			preloads = opts.Preloads
		}
	}
	var registros []T
	tx := r.comPreloads(r.db.WithContext(ctx), preloads).Where(cond, args...).Order(ordem)
	if err := tx.Find(&registros).Error; err != nil {
		return nil, traduzErro(err, false)
	}
	return registros, nil
}

// Update loads the record (ErrNaoEncontrado when absent), lets the caller
// merge the partial field set onto it and saves the result. Unique and
// foreign key violations surface with the same typed kinds as Create.
func (r *Repository[T]) Update(ctx context.Context, id uint, merge func(*T) error) (*T, error) {
	var registro T
	if err := r.db.WithContext(ctx).First(&registro, "id = ?", id).Error; err != nil {
		return nil, traduzErro(err, false)
	}
	if err := merge(&registro); err != nil {
		return nil, err
	}
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(&registro).Error
	if err != nil {
		return nil, traduzErro(err, false)
	}
	return &registro, nil
}

// Delete removes the record by primary key. Missing rows yield
// ErrNaoEncontrado; deletes blocked by dependents yield ErrDependencia.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	var registro T
	result := r.db.WithContext(ctx).Delete(&registro, "id = ?", id)
	if result.Error != nil {
		return traduzErro(result.Error, true)
	}
	if result.RowsAffected == 0 {
		return ErrNaoEncontrado
	}
	return nil
}
