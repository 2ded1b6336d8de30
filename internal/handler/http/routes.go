// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Towech Financeapp

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/towech-financeapp/webapi/internal/utils"
	"github.com/towech-financeapp/webapi/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	if h.http.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{h.http.CORSOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	router.Route("/authentication", func(r chi.Router) {
		r.Post("/login", h.login)
		r.With(h.checkRefresh).Post("/refresh", h.refresh)
		r.With(h.checkRefresh).Post("/logout", h.logout)
		r.With(h.checkRefresh).Post("/logout-all", h.logoutAll)
		r.Patch("/verify/{token}", h.verifyAccount)
	})

	router.Route("/users", func(r chi.Router) {
		r.With(h.checkAdmin).Get("/", h.listUsers)
		r.With(h.checkAdmin).Post("/register", h.register)
		r.With(h.checkAuth).Put("/password", h.changePassword)

		r.Route("/reset", func(r chi.Router) {
			r.Post("/", h.requestReset)
			r.Get("/{token}", h.validateReset)
			r.Post("/{token}", h.redeemReset)
		})

		r.Route("/{userId}", func(r chi.Router) {
			r.With(h.checkAuth, h.validateAdminOrOwner).Patch("/", h.editUser)
			r.With(h.checkAuth, h.validateAdminOrOwner).Put("/email", h.changeEmail)
			r.With(h.checkAdmin).Delete("/", h.deleteUser)
		})
	})

	router.Route("/categories", func(r chi.Router) {
		r.Use(h.checkAuth)
		r.Get("/", h.listCategories)
		r.With(h.checkConfirmed).Post("/", h.addCategory)

		r.Route("/{categoryId}", func(r chi.Router) {
			r.Use(h.checkConfirmed)
			r.Get("/", h.getCategory)
			r.Patch("/", h.editCategory)
			r.Delete("/", h.deleteCategory)
		})
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Use(h.checkAuth)
		r.With(h.checkConfirmed).Post("/", h.addTransaction)

		r.Route("/{transactionId}", func(r chi.Router) {
			r.Get("/", h.getTransaction)
			r.With(h.checkConfirmed).Patch("/", h.editTransaction)
			r.With(h.checkConfirmed).Delete("/", h.deleteTransaction)
		})
	})

	router.Route("/wallets", func(r chi.Router) {
		r.Use(h.checkAuth)
		r.Get("/", h.listWallets)
		r.With(h.checkConfirmed).Post("/", h.addWallet)
		r.With(h.checkConfirmed).Post("/transfer", h.transfer)

		r.Route("/{walletId}", func(r chi.Router) {
			r.Get("/transactions", h.walletTransactions)

			r.Use(h.checkConfirmed)
			r.Get("/", h.getWallet)
			r.Patch("/", h.editWallet)
			r.Delete("/", h.deleteWallet)
		})
	})

	router.Route("/debts", func(r chi.Router) {
		r.Use(h.checkAuth)
		r.With(h.checkConfirmed).Post("/", h.addDebt)

		r.Route("/{debtId}", func(r chi.Router) {
			r.Use(h.checkConfirmed)
			r.Get("/", h.getDebt)
			r.Post("/", h.payDebt)
			r.Patch("/", h.editDebt)
			r.Delete("/", h.deleteDebt)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.NewAPIError(http.StatusNotFound, "Not Found"), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.NewAPIError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed)
	})

	return router
}
