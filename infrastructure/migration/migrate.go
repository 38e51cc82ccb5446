// Package migration aplica o schema do banco a partir dos arquivos SQL embutidos no binário
package migration

import (
	"database/sql"
	"embed"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const migrationsDir = "sql"

//go:embed sql/*.sql
var migrationsFS embed.FS

// Source retorna a origem das migrações embutidas
func Source() (fs.FS, error) {
	return fs.Sub(migrationsFS, migrationsDir)
}

// Run aplica todas as migrações pendentes. Nenhuma alteração pendente não é erro.
func Run(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "erro ao criar driver de migração do postgres")
	}

	source, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return errors.Wrap(err, "erro ao carregar migrações embutidas")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "erro ao criar instância de migração")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "erro ao aplicar migrações")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errors.Wrap(err, "erro ao consultar versão do schema")
	}

	logrus.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Migrações aplicadas")

	return nil
}
