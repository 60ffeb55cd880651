// Package permissions Модель прав доступа с упорядоченными уровнями.
// Реестр живет в памяти процесса и заполняется заново при каждом старте
// (владелец задается конфигурацией) - это осознанное ограничение.
package permissions

import (
	"sync"

	"github.com/pkg/errors"

	"ledgerbot/internal/model/lederrors"
)

// Level Уровень прав. Уровни строго упорядочены, сравнение монотонное.
type Level int

const (
	None       Level = 0 // Неизвестный пользователь.
	Operator   Level = 1 // Операторы: запись и просмотр транзакций.
	Admin      Level = 2 // Администраторы: удаление, настройки, выдача прав оператора.
	SuperAdmin Level = 3 // Владелец бота. Назначается только при старте.
)

// String Наименование уровня для ответов пользователю.
func (l Level) String() string {
	switch l {
	case Operator:
		return "操作人"
	case Admin:
		return "管理员"
	case SuperAdmin:
		return "超级管理员"
	}
	return "无权限"
}

// Registry Реестр прав. Единственный SuperAdmin - владелец,
// заданный при инициализации; обычными командами этот уровень
// не выдается и не отзывается.
type Registry struct {
	mu     sync.RWMutex
	levels map[int64]Level
	owner  int64
}

// NewRegistry Инициализация реестра с владельцем-бутстрапом.
func NewRegistry(ownerID int64) *Registry {
	return &Registry{
		levels: map[int64]Level{ownerID: SuperAdmin},
		owner:  ownerID,
	}
}

// Level Текущий уровень пользователя (None для неизвестных).
func (r *Registry) Level(principalID int64) Level {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.levels[principalID]
}

// CheckLevel Проверка, что уровень пользователя не ниже требуемого.
func (r *Registry) CheckLevel(principalID int64, required Level) bool {
	return r.Level(principalID) >= required
}

// Grant Выдача уровня прав. Выдающий должен иметь уровень строго выше
// выдаваемого и строго выше текущего уровня получателя - пользователь
// не может выдать уровень, равный своему, и не может понизить равного
// себе. SuperAdmin не выдается никогда.
func (r *Registry) Grant(actorID int64, targetID int64, level Level) error {
	if level >= SuperAdmin || level <= None {
		return errors.Wrap(lederrors.ErrNotPermitted, "уровень не может быть выдан командой")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	actorLevel := r.levels[actorID]
	if actorLevel <= level {
		return errors.Wrapf(lederrors.ErrNotPermitted, "уровень %d недостаточен для выдачи уровня %d", actorLevel, level)
	}
	if actorLevel <= r.levels[targetID] {
		return errors.Wrap(lederrors.ErrNotPermitted, "нельзя изменить уровень равного или старшего")
	}

	r.levels[targetID] = level
	return nil
}

// Revoke Отзыв прав. Отзывающий должен иметь уровень строго выше текущего
// уровня отзываемого; как следствие, SuperAdmin не может быть отозван или
// понижен никем, включая другого SuperAdmin.
func (r *Registry) Revoke(actorID int64, targetID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targetLevel, exists := r.levels[targetID]
	if !exists || targetLevel == None {
		return errors.Wrapf(lederrors.ErrNotFound, "пользователь %d не имеет прав", targetID)
	}
	if r.levels[actorID] <= targetLevel {
		return errors.Wrap(lederrors.ErrNotPermitted, "нельзя отозвать права равного или старшего")
	}

	delete(r.levels, targetID)
	return nil
}

// Owner Идентификатор владельца-бутстрапа.
func (r *Registry) Owner() int64 {
	return r.owner
}
