package internal

import (
	"errors"
	"sync/atomic"
)

var customizationsLocked atomic.Bool

func LockCustomizations() {
	customizationsLocked.Store(true)
}

func CheckCanCustomize() {
	if customizationsLocked.Load() {
		panic(errors.New("cannot add customizations after app start"))
	}
}

func CheckLockedDown() {
	if !customizationsLocked.Load() {
		panic(errors.New("cannot instantiate customizations until app start and lockdown"))
	}
}
