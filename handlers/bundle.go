package handlers

import (
	userRepo "glamazon/database/repository/user"
)

// HandlerBundle groups the handlers and the repository the auth middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	UserHandler        *UserHandler
	AppointmentHandler *AppointmentHandler
	DashboardHandler   *DashboardHandler
}
