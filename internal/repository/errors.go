package repository

import "errors"

var (
	// ErrNotFound — записи с таким ID нет.
	ErrNotFound = errors.New("запись не найдена")
	// ErrCategoryExists — явное создание категории с занятым именем.
	ErrCategoryExists = errors.New("категория уже существует")
)
