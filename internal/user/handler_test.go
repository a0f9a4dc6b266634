package user_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/transport"
	"github.com/frahmantamala/rbac-console/internal/user"
)

var _ = Describe("User Handler", func() {
	var (
		panel  *crud.Panel[user.User]
		router *chi.Mux
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		panel = user.NewPanel(true, crud.WithLogger(slogger))
		handler := user.NewHandler(&transport.BaseHandler{Logger: slogger}, panel)

		router = chi.NewRouter()
		router.Route("/users", handler.Routes)
	})

	It("should list the seeded users", func() {
		w := do(http.MethodGet, "/users", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var resp transport.ListResponse[user.User]
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp.Kind).To(Equal("users"))
		Expect(resp.Items).To(HaveLen(3))
		Expect(resp.Revision).To(Equal(uint64(3)))
	})

	It("should return 404 for an unknown id", func() {
		w := do(http.MethodGet, "/users/42", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))

		var resp map[string]map[string]any
		Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
		Expect(resp["error"]["code"]).To(Equal(string(internal.ErrCodeEntityNotFound)))
	})

	It("should return 400 for a non-numeric id", func() {
		w := do(http.MethodGet, "/users/abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should create a valid user", func() {
		w := do(http.MethodPost, "/users", `{"name":"Ann","email":"ann@example.com","role":"Admin","status":"Active"}`)

		Expect(w.Code).To(Equal(http.StatusCreated))
		var created user.User
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created.ID).To(Equal(int64(4)))
		Expect(panel.Len()).To(Equal(4))
	})

	It("should reject an invalid user with field details", func() {
		w := do(http.MethodPost, "/users", `{"name":"","email":"bad","role":"Admin","status":"Active"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(`"field":"email"`))
		Expect(panel.Len()).To(Equal(3))
	})

	It("should reject a malformed body", func() {
		w := do(http.MethodPost, "/users", `{`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should replace a user keeping the path id", func() {
		w := do(http.MethodPut, "/users/2", `{"name":"Jane Doe","email":"jane@example.com","role":"Viewer","status":"Inactive"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		got, ok := panel.Store.Get(2)
		Expect(ok).To(BeTrue())
		Expect(got.Name).To(Equal("Jane Doe"))
		Expect(panel.Len()).To(Equal(3))
	})

	It("should answer 204 on delete whether or not the user exists", func() {
		Expect(do(http.MethodDelete, "/users/1", "").Code).To(Equal(http.StatusNoContent))
		Expect(do(http.MethodDelete, "/users/1", "").Code).To(Equal(http.StatusNoContent))
		Expect(panel.Len()).To(Equal(2))
	})

	Describe("editor", func() {
		It("should run an add flow end to end", func() {
			Expect(do(http.MethodPost, "/users/editor", "").Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodPost, "/users/editor", "").Code).To(Equal(http.StatusConflict))

			w := do(http.MethodPut, "/users/editor", `{"name":"Ann","email":"ann@example.com","role":"Viewer","status":"Active"}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			var state crud.EditorState[user.User]
			Expect(json.NewDecoder(w.Body).Decode(&state)).To(Succeed())
			Expect(state.Editing).To(BeTrue())
			Expect(state.Mode).To(Equal(crud.ModeCreate))
			Expect(state.Draft.Name).To(Equal("Ann"))

			w = do(http.MethodPost, "/users/editor/submit", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(panel.Len()).To(Equal(4))
			Expect(panel.Editor.State().Editing).To(BeFalse())
		})

		It("should keep editing when the draft is invalid", func() {
			do(http.MethodPost, "/users/editor", "")

			w := do(http.MethodPost, "/users/editor/submit", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(panel.Editor.State().Editing).To(BeTrue())
		})

		It("should open an edit session and cancel it", func() {
			before := panel.Store.List()

			Expect(do(http.MethodPost, "/users/3/editor", "").Code).To(Equal(http.StatusOK))
			Expect(do(http.MethodDelete, "/users/editor", "").Code).To(Equal(http.StatusOK))

			Expect(panel.Store.List()).To(Equal(before))
			Expect(panel.Editor.State().Editing).To(BeFalse())
		})

		It("should return 404 when editing an unknown id", func() {
			Expect(do(http.MethodPost, "/users/9/editor", "").Code).To(Equal(http.StatusNotFound))
		})

		It("should return 409 when submitting an idle editor", func() {
			Expect(do(http.MethodPost, "/users/editor/submit", "").Code).To(Equal(http.StatusConflict))
		})
	})
})
