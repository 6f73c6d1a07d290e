package commands

import (
	"context"

	"hospitalfood/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	// OrderUoW serves batch order updates, which also look up delivery staff.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StaffRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	PatientUoW interface {
		TxManager
		PatientRepoFactory
	}

	PatientUoWFactory interface {
		Create() PatientUoW
	}

	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// UoW reaches every repository; meal placement needs all three.
	UoW interface {
		TxManager
		OrderRepoFactory
		PatientRepoFactory
		StaffRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
