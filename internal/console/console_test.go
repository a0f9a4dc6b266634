package console_test

import (
	"bytes"
	"context"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/frahmantamala/rbac-console/internal/console"
	"github.com/frahmantamala/rbac-console/internal/core/crud"
	"github.com/frahmantamala/rbac-console/internal/permission"
	"github.com/frahmantamala/rbac-console/internal/role"
	"github.com/frahmantamala/rbac-console/internal/shell"
	"github.com/frahmantamala/rbac-console/internal/user"
	"github.com/frahmantamala/rbac-console/pkg/logger"
)

func byScope(perms []permission.Permission) []console.Group[permission.Permission] {
	var out []console.Group[permission.Permission]
	for _, g := range permission.ByScope(perms) {
		out = append(out, console.Group[permission.Permission]{Title: g.Scope, Items: g.Permissions})
	}
	return out
}

var _ = Describe("Console", func() {
	var (
		users *crud.Panel[user.User]
		roles *crud.Panel[role.Role]
		perms *crud.Panel[permission.Permission]
		sh    *shell.Shell
		con   *console.Console
		out   *bytes.Buffer
	)

	exec := func(line string) string {
		out.Reset()
		con.Exec(line, out)
		return out.String()
	}

	BeforeEach(func() {
		opt := crud.WithLogger(logger.Discard())
		users = user.NewPanel(true, opt)
		roles = role.NewPanel(true, opt)
		perms = permission.NewPanel(true, opt)

		var err error
		sh, err = shell.New(shell.TabUsers, users, roles, perms)
		Expect(err).NotTo(HaveOccurred())

		con, err = console.New(sh, logger.Discard(),
			console.Bind(console.Binding[user.User]{Panel: users, Columns: user.Columns(), Row: user.Row, SetField: user.SetField}),
			console.Bind(console.Binding[role.Role]{Panel: roles, Columns: role.Columns(), Row: role.Row, SetField: role.SetField, Toggle: role.ToggleDraftPermission, Details: role.Checklist}),
			console.Bind(console.Binding[permission.Permission]{Panel: perms, Columns: permission.Columns(), Row: permission.Row, SetField: permission.SetField, GroupBy: byScope}),
		)
		Expect(err).NotTo(HaveOccurred())
		out = &bytes.Buffer{}
	})

	It("lists the active tab as a table", func() {
		listing := exec("list")
		Expect(listing).To(ContainSubstring("EMAIL"))
		Expect(listing).To(ContainSubstring("john@example.com"))
		Expect(strings.Count(listing, "\n")).To(Equal(4))
	})

	It("switches tabs", func() {
		Expect(exec("tab roles")).To(ContainSubstring("Full access to all features"))
		Expect(sh.Active()).To(Equal(shell.TabRoles))

		Expect(exec("tab audit")).To(HavePrefix("error:"))
		Expect(sh.Active()).To(Equal(shell.TabRoles))
	})

	It("marks the active tab in the tab summary", func() {
		Expect(exec("tabs")).To(ContainSubstring("* users"))
	})

	It("adds a user through the editor", func() {
		exec("add")
		Expect(exec(`set name="Ann Lee" email=ann@example.com role=Viewer`)).To(ContainSubstring("Ann Lee"))
		Expect(exec("save")).To(ContainSubstring("saved record 4"))

		got, ok := users.Store.Get(4)
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(user.User{ID: 4, Name: "Ann Lee", Email: "ann@example.com", Role: "Viewer", Status: user.StatusActive}))
	})

	It("blocks an invalid save and keeps the draft", func() {
		exec("add")
		Expect(exec("save")).To(ContainSubstring("name is required"))
		Expect(users.Editor.State().Editing).To(BeTrue())
		Expect(users.Len()).To(Equal(3))
	})

	It("leaves the draft unchanged on a rejected value", func() {
		exec("edit 1")
		Expect(exec("set status=Suspended")).To(HavePrefix("error:"))
		Expect(users.Editor.State().Draft.Status).To(Equal(user.StatusActive))
	})

	It("edits and cancels without touching the store", func() {
		before := users.Store.List()
		exec("edit 2")
		exec("set name=Changed")
		exec("cancel")

		Expect(users.Store.List()).To(Equal(before))
		Expect(exec("show")).To(ContainSubstring("editor idle"))
	})

	It("reports a busy editor", func() {
		exec("add")
		Expect(exec("edit 1")).To(ContainSubstring("already open"))
	})

	It("toggles role permissions", func() {
		exec("tab roles")
		exec("edit 3")
		toggled := exec("toggle Write")
		Expect(toggled).To(ContainSubstring("Read, Write"))
		Expect(toggled).To(ContainSubstring("[x] Write"))
		Expect(toggled).To(ContainSubstring("[ ] Delete"))
		exec("save")

		viewer, _ := roles.Store.Get(3)
		Expect(viewer.Permissions).To(Equal([]string{"Read", "Write"}))
	})

	It("groups the permissions listing by scope", func() {
		listing := exec("tab permissions")
		Expect(listing).To(ContainSubstring("Users (3)"))
		Expect(listing).To(ContainSubstring("Blog (3)"))
		Expect(strings.Index(listing, "Users (3)")).To(BeNumerically("<", strings.Index(listing, "Read Posts")))
		Expect(strings.Index(listing, "Blog (3)")).To(BeNumerically("<", strings.Index(listing, "Read Posts")))
	})

	It("shows a checklist for a blank role draft", func() {
		exec("tab roles")
		exec("add")
		Expect(exec("show")).To(ContainSubstring("[ ] Read"))
	})

	It("refuses toggle outside the roles tab", func() {
		exec("add")
		Expect(exec("toggle Read")).To(HavePrefix("error:"))
	})

	It("deletes idempotently", func() {
		Expect(exec("delete 1")).To(ContainSubstring("deleted record 1"))
		Expect(exec("delete 1")).To(ContainSubstring("nothing deleted"))
		Expect(users.Len()).To(Equal(2))
	})

	It("rejects a bad id", func() {
		Expect(exec("edit x")).To(ContainSubstring("invalid id"))
	})

	It("runs a scripted session until quit", func() {
		script := strings.NewReader("tab permissions\nadd\nset name=Audit description=\"Reads audit log\" scope=System\nsave\nquit\nlist\n")
		Expect(con.Run(context.Background(), script, out)).To(Succeed())

		Expect(perms.Len()).To(Equal(7))
		Expect(out.String()).To(ContainSubstring("saved record 7"))
	})

	It("returns when the context is cancelled while waiting for input", func() {
		pr, pw := io.Pipe()
		DeferCleanup(pw.Close)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		buf := gbytes.NewBuffer()
		done := make(chan error, 1)
		go func() { done <- con.Run(ctx, pr, buf) }()

		_, err := pw.Write([]byte("tab roles\n"))
		Expect(err).NotTo(HaveOccurred())
		Eventually(buf).Should(gbytes.Say("roles> "))

		cancel()
		Eventually(done, "2s").Should(Receive(BeNil()))
	})

	It("stops at end of input", func() {
		Expect(con.Run(context.Background(), strings.NewReader("list\n"), out)).To(Succeed())
	})
})
