package console_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/rbac-console/internal/console"
)

var _ = Describe("Tokenize", func() {
	DescribeTable("splits command lines",
		func(line string, want []string) {
			got, err := console.Tokenize(line)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("plain words", "edit 3", []string{"edit", "3"}),
		Entry("extra whitespace", "  list \t ", []string{"list"}),
		Entry("quoted value", `set name="Ann Lee" role=Admin`, []string{"set", "name=Ann Lee", "role=Admin"}),
		Entry("escaped quote", `set description="say \"hi\""`, []string{"set", `description=say "hi"`}),
		Entry("empty quotes", `set role=""`, []string{"set", "role="}),
		Entry("single quotes", `set name='Ann Lee'`, []string{"set", "name=Ann Lee"}),
		Entry("backslash outside quotes", `set name=Ann\ Lee`, []string{"set", "name=Ann Lee"}),
		Entry("blank line", "", []string{}),
	)

	It("rejects an unterminated quote", func() {
		_, err := console.Tokenize(`set name="Ann`)
		Expect(err).To(MatchError(console.ErrMalformedLine))

		_, err = console.Tokenize(`set name='Ann`)
		Expect(err).To(MatchError(console.ErrMalformedLine))
	})

	It("rejects command separators outside quotes", func() {
		_, err := console.Tokenize("delete 1; delete 2")
		Expect(err).To(MatchError(console.ErrUnsupportedChar))

		got, err := console.Tokenize(`set description="read; write"`)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]string{"set", "description=read; write"}))
	})
})
