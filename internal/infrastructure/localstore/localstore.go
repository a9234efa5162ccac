// Package localstore persiste snapshots JSON bajo claves fijas en un
// directorio local: el análogo servidor del localStorage del navegador.
// Cada clave es un archivo <clave>.json dentro del directorio.
package localstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store archivo-por-clave sobre un afero.Fs (OsFs en producción,
// MemMapFs en tests).
type Store struct {
	fs  afero.Fs
	dir string
}

// New prepara el directorio de snapshots.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// Set serializa v como JSON y lo escribe bajo la clave, reemplazando el
// valor anterior completo (snapshot, no delta).
func (s *Store) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: serializar %q: %w", key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir %q: %w", key, err)
	}
	return nil
}

// Get deserializa el valor de la clave en v. Devuelve found=false sin error
// cuando la clave nunca se ha escrito; un valor ilegible sí es error.
func (s *Store) Get(key string, v any) (found bool, err error) {
	exists, err := afero.Exists(s.fs, s.path(key))
	if err != nil {
		return false, fmt.Errorf("localstore: consultar %q: %w", key, err)
	}
	if !exists {
		return false, nil
	}
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		return false, fmt.Errorf("localstore: leer %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("localstore: snapshot %q ilegible: %w", key, err)
	}
	return true, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
