package cache

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shaiso/Fabrica/internal/semver"
)

// Entry — один пакет в кэше: имя, версия и его артефакты.
type Entry struct {
	// Name — имя пакета, сегменты разделены "/".
	Name string

	// Version — версия пакета.
	Version semver.Version

	// Dir — директория версии на диске.
	Dir string

	// Artifacts — имена файлов артефактов в Dir.
	Artifacts []string
}

// Cache — файловый кэш артефактов, привязанный к корневой директории.
//
// Все операции синхронные, конкурентный доступ не поддерживается.
type Cache struct {
	root string
}

// New открывает кэш в директории root, создавая её при необходимости.
// Относительный путь разрешается от текущей директории.
func New(root string) (*Cache, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &Cache{root: abs}, nil
}

// Root возвращает корневую директорию кэша.
func (c *Cache) Root() string {
	return c.root
}

// Put кладёт файлы в кэш под именем и версией пакета.
// Существующая запись той же версии перезаписывается пофайлово.
func (c *Cache) Put(name string, version semver.Version, files []string) (Entry, error) {
	dir, err := c.entryDir(name, version)
	if err != nil {
		return Entry{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Entry{}, err
	}

	artifacts := make([]string, 0, len(files))
	for _, file := range files {
		base := filepath.Base(file)
		if err := copyFile(file, filepath.Join(dir, base)); err != nil {
			return Entry{}, err
		}
		artifacts = append(artifacts, base)
	}
	sort.Strings(artifacts)

	return Entry{Name: name, Version: version, Dir: dir, Artifacts: artifacts}, nil
}

// Get возвращает запись точной версии пакета.
// Возвращает ErrNotCached, если версии нет.
func (c *Cache) Get(name string, version semver.Version) (Entry, error) {
	dir, err := c.entryDir(name, version)
	if err != nil {
		return Entry{}, err
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return Entry{}, fmt.Errorf("%w: %s@%s", ErrNotCached, name, version)
	}

	artifacts, err := listArtifacts(dir)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: name, Version: version, Dir: dir, Artifacts: artifacts}, nil
}

// Versions возвращает все закэшированные версии пакета по возрастанию.
func (c *Cache) Versions(name string) ([]semver.Version, error) {
	dir, err := c.nameDir(name)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	versions := make([]semver.Version, 0, len(entries))
	for _, de := range entries {
		if !de.IsDir() {
			continue
		}
		seg, err := ParseSegment(de.Name())
		if err != nil {
			return nil, err
		}
		if seg.IsVersion {
			versions = append(versions, seg.Version)
		}
	}

	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare(versions[i], versions[j]) < 0
	})
	return versions, nil
}

// Find ищет наибольшую закэшированную версию пакета,
// удовлетворяющую ограничение. Возвращает ErrNotCached при промахе.
func (c *Cache) Find(name string, constraint semver.Constraint) (Entry, error) {
	versions, err := c.Versions(name)
	if err != nil {
		return Entry{}, err
	}

	best, ok := semver.MaxSatisfying(constraint, versions)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s %s", ErrNotCached, name, constraint)
	}
	return c.Get(name, best)
}

// List возвращает все пакеты кэша, рекурсивно обходя директории имён.
func (c *Cache) List() ([]Entry, error) {
	var entries []Entry
	if err := c.walk(c.root, nil, &entries); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return semver.Compare(entries[i].Version, entries[j].Version) < 0
	})
	return entries, nil
}

// walk рекурсивно спускается по сегментам имени, собирая записи
// из встреченных директорий версий.
func (c *Cache) walk(dir string, name []string, out *[]Entry) error {
	des, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, de := range des {
		if !de.IsDir() {
			continue
		}

		seg, err := ParseSegment(de.Name())
		if err != nil {
			return err
		}

		child := filepath.Join(dir, de.Name())
		if !seg.IsVersion {
			next := append(append([]string(nil), name...), seg.Name)
			if err := c.walk(child, next, out); err != nil {
				return err
			}
			continue
		}

		if len(name) == 0 {
			return fmt.Errorf("%w: %s", ErrUnnamedPackage, child)
		}
		artifacts, err := listArtifacts(child)
		if err != nil {
			return err
		}
		*out = append(*out, Entry{
			Name:      strings.Join(name, "/"),
			Version:   seg.Version,
			Dir:       child,
			Artifacts: artifacts,
		})
	}

	return nil
}

// nameDir строит директорию имени, проверяя каждый сегмент:
// сегмент-версия внутри имени недопустим.
func (c *Cache) nameDir(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}

	parts := strings.Split(name, "/")
	for _, part := range parts {
		seg, err := ParseSegment(part)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrInvalidName, name, err)
		}
		if seg.IsVersion {
			return "", fmt.Errorf("%w: %s: segment %q looks like a version", ErrInvalidName, name, part)
		}
	}
	return filepath.Join(append([]string{c.root}, parts...)...), nil
}

func (c *Cache) entryDir(name string, version semver.Version) (string, error) {
	dir, err := c.nameDir(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, version.String()), nil
}

func listArtifacts(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	artifacts := make([]string, 0, len(des))
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		artifacts = append(artifacts, de.Name())
	}
	sort.Strings(artifacts)
	return artifacts, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
