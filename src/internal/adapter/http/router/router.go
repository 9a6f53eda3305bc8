package router

import "net/http"

type ProfileRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type ContractRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type JobRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type BalanceRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

type ReportRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(
	profileController ProfileRouteRegistrar,
	contractController ContractRouteRegistrar,
	jobController JobRouteRegistrar,
	balanceController BalanceRouteRegistrar,
	reportController ReportRouteRegistrar,
	profileAuth func(http.Handler) http.Handler,
	adminAuth func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()

	if profileController != nil {
		profileController.RegisterRoutes(mux, profileAuth)
	}
	if contractController != nil {
		contractController.RegisterRoutes(mux, profileAuth)
	}
	if jobController != nil {
		jobController.RegisterRoutes(mux, profileAuth)
	}
	if balanceController != nil {
		balanceController.RegisterRoutes(mux, profileAuth)
	}
	if reportController != nil {
		reportController.RegisterRoutes(mux, adminAuth)
	}

	return mux
}
