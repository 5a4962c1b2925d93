// Package csvstore implementa los puertos de persistencia sobre archivos CSV,
// uno por tabla, con fila de encabezado. El contrato es el del sistema
// original: cargar la tabla completa, mutarla en memoria y guardarla completa.
// Un archivo ausente equivale a una tabla vacía.
package csvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
)

// Archivos de datos, uno por conjunto de registros.
const (
	itemsFile   = "items.csv"
	exitsFile   = "exits.csv"
	entriesFile = "entries.csv"
	auditFile   = "audit.csv"
	usersFile   = "users.csv"
)

// timeLayout formato de los timestamps persistidos, heredado de los datos históricos.
const timeLayout = "2006-01-02 15:04:05"

// mirrorTimeout tiempo máximo para el push best-effort al espejo remoto.
const mirrorTimeout = 30 * time.Second

// Mirror replica un archivo recién guardado hacia un almacén remoto.
// Se invoca después de cada guardado local exitoso; su fallo se registra
// y no revierte el guardado local (el archivo local es la frontera de durabilidad).
type Mirror interface {
	Push(ctx context.Context, localPath string) error
}

// Store acceso compartido a la carpeta de datos. Los repositorios del paquete
// pasan por aquí para cargar y guardar sus tablas.
type Store struct {
	// mu serializa todo acceso a archivos: dos appends concurrentes sobre la
	// misma tabla reescribirían el archivo pisándose entre sí.
	mu     sync.Mutex
	dir    string
	mirror Mirror
	log    zerolog.Logger
}

// NewStore crea la carpeta de datos si no existe. mirror puede ser nil.
func NewStore(dir string, mirror Mirror, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear carpeta de datos %s: %w", dir, err)
	}
	return &Store{dir: dir, mirror: mirror, log: log}, nil
}

// loadTable carga todas las filas de un archivo. Archivo ausente o vacío = tabla vacía.
func loadTable[T any](s *Store, name string) ([]*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return loadTableLocked[T](s, name)
}

func loadTableLocked[T any](s *Store, name string) ([]*T, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("abrir %s: %w", name, err)
	}
	defer f.Close()

	var rows []*T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", name, err)
	}
	return rows, nil
}

// saveTable guarda la tabla completa de forma atómica (archivo temporal + rename)
// y luego la empuja al espejo remoto si hay uno configurado.
func saveTable[T any](s *Store, name string, rows []*T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveTableLocked(s, name, rows)
}

func saveTableLocked[T any](s *Store, name string, rows []*T) error {
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("crear %s: %w", tmp, err)
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cerrar %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("guardar %s: %w", name, err)
	}

	s.pushMirror(path)
	return nil
}

// mutateTable carga, transforma y guarda una tabla bajo el mismo lock.
func mutateTable[T any](s *Store, name string, fn func(rows []*T) ([]*T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := loadTableLocked[T](s, name)
	if err != nil {
		return err
	}
	rows, err = fn(rows)
	if err != nil {
		return err
	}
	return saveTableLocked(s, name, rows)
}

func (s *Store) pushMirror(path string) {
	if s.mirror == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()
	if err := s.mirror.Push(ctx, path); err != nil {
		s.log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("espejo remoto falló; el guardado local se conserva")
	}
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp inválido %q: %w", s, err)
	}
	return t, nil
}
