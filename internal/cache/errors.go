package cache

import "errors"

// Ошибки кэша артефактов.
var (
	// ErrNotCached — пакет с подходящей версией в кэше отсутствует.
	ErrNotCached = errors.New("package not found in cache")

	// ErrEmptySegment — пустой сегмент пути не является идентификатором.
	ErrEmptySegment = errors.New("zero-length path segment")

	// ErrInvalidVersionSegment — сегмент начинается с цифры,
	// но не разбирается как семантическая версия.
	ErrInvalidVersionSegment = errors.New("segment starts with digit but is not a valid version")

	// ErrInvalidName — имя пакета содержит недопустимый сегмент.
	ErrInvalidName = errors.New("invalid package name")

	// ErrUnnamedPackage — директория версии лежит вне директории имени.
	ErrUnnamedPackage = errors.New("version directory without package name")
)
