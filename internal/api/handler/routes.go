package handler

import (
	"net/http"

	"github.com/simb2b/sim-backoffice-api/internal/api/handler/router"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/authenticating"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/cashbook"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/dataset"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/ordering"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/reporting"
	"github.com/simb2b/sim-backoffice-api/internal/usecases/stats"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/auth/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/auth/signup",
			Method:  http.MethodPost,
			Handler: Signup(service),
		},
		{
			Path:    "/v1/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/auth/refresh",
			Method:  http.MethodPost,
			Handler: Refresh(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func SimTypes(store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sim-types",
			Method:  http.MethodGet,
			Handler: ListSimTypes(store),
		},
		{
			Path:    "/v1/sim-types",
			Method:  http.MethodPost,
			Handler: CreateSimType(store),
		},
		{
			Path:    "/v1/sim-types/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSimType(store),
		},
	}
}

func Inventory(store *dataset.Store, statsService stats.StatsBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/inventory",
			Method:  http.MethodGet,
			Handler: GetInventory(statsService),
		},
		{
			Path:    "/v1/packages",
			Method:  http.MethodGet,
			Handler: ListPackages(store),
		},
		{
			Path:    "/v1/packages",
			Method:  http.MethodPost,
			Handler: CreatePackage(store),
		},
		{
			Path:    "/v1/packages/:id",
			Method:  http.MethodDelete,
			Handler: DeletePackage(store),
		},
	}
}

func Customers(store *dataset.Store, statsService stats.StatsBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: ListCustomers(statsService),
		},
		{
			Path:    "/v1/customers",
			Method:  http.MethodPost,
			Handler: CreateCustomer(store),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodPut,
			Handler: UpdateCustomer(store),
		},
		{
			Path:    "/v1/customers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCustomer(store),
		},
	}
}

func Orders(store *dataset.Store, orderService ordering.OrderManager, statsService stats.StatsBuilder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(statsService),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: CreateOrder(orderService),
		},
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodDelete,
			Handler: DeleteOrder(orderService),
		},
		{
			Path:    "/v1/orders/:id/due-date",
			Method:  http.MethodPost,
			Handler: ExtendDueDate(orderService),
		},
		{
			Path:    "/v1/orders/:id/due-date-logs",
			Method:  http.MethodGet,
			Handler: ListDueDateLogs(store),
		},
	}
}

func Transactions(store *dataset.Store, cashbookService cashbook.CashbookManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/transactions",
			Method:  http.MethodGet,
			Handler: ListTransactions(store),
		},
		{
			Path:    "/v1/transactions",
			Method:  http.MethodPost,
			Handler: CreateTransaction(cashbookService),
		},
		{
			Path:    "/v1/transactions/:id",
			Method:  http.MethodDelete,
			Handler: DeleteTransaction(cashbookService),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/reports/cashflow",
			Method:  http.MethodGet,
			Handler: GetMonthlyCashflow(service),
		},
		{
			Path:    "/v1/reports/debts",
			Method:  http.MethodGet,
			Handler: GetOutstandingDebts(service),
		},
		{
			Path:    "/v1/reports/calendar",
			Method:  http.MethodGet,
			Handler: GetProfitCalendar(service),
		},
	}
}

func Dataset(store *dataset.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(store),
		},
	}
}
