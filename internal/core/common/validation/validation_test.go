package validation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/rbac-console/internal"
	"github.com/frahmantamala/rbac-console/internal/core/common/validation"
)

func codes(appErr *internal.AppError) []string {
	if appErr == nil {
		return nil
	}
	var out []string
	for _, e := range appErr.Details.(internal.ValidationErrors).Errors {
		out = append(out, e.Field+":"+e.Code)
	}
	return out
}

var _ = Describe("ValidationBuilder", func() {
	It("passes when every rule holds", func() {
		v := validation.NewValidator()
		v.Field("name", "Ann").Required().MaxLength(10)
		v.Field("email", "ann@example.com").Email()
		v.Field("tags", []string{"a", "b"}).EachOneOf(internal.ErrCodeInvalidPermission, "a", "b").Unique()
		Expect(v.Validate()).To(BeNil())
	})

	It("treats whitespace as missing", func() {
		v := validation.NewValidator()
		v.Field("name", "   ").Required()
		Expect(codes(v.Validate())).To(Equal([]string{"name:REQUIRED_FIELD"}))
	})

	It("stops each field at its first failure", func() {
		v := validation.NewValidator()
		v.Field("email", "").Required().Email()
		Expect(codes(v.Validate())).To(Equal([]string{"email:REQUIRED_FIELD"}))
	})

	It("collects failures across fields in order", func() {
		v := validation.NewValidator()
		v.Field("name", "toolong").MaxLength(3)
		v.Field("status", "Gone").OneOf(internal.ErrCodeInvalidStatus, "Active", "Inactive")
		Expect(codes(v.Validate())).To(Equal([]string{"name:VALIDATION_FAILED", "status:INVALID_STATUS"}))
	})

	It("counts runes, not bytes", func() {
		v := validation.NewValidator()
		v.Field("name", "ééé").MaxLength(3)
		Expect(v.Validate()).To(BeNil())
	})

	DescribeTable("Email",
		func(addr string, ok bool) {
			v := validation.NewValidator()
			v.Field("email", addr).Email()
			if ok {
				Expect(v.Validate()).To(BeNil())
			} else {
				Expect(codes(v.Validate())).To(Equal([]string{"email:INVALID_EMAIL"}))
			}
		},
		Entry("plain address", "john@example.com", true),
		Entry("subdomain", "a.b@mail.example.org", true),
		Entry("missing at", "john.example.com", false),
		Entry("display name form", "John <john@example.com>", false),
	)

	It("flags unknown and duplicate labels", func() {
		v := validation.NewValidator()
		v.Field("unknown", []string{"Read", "Fly"}).EachOneOf(internal.ErrCodeInvalidPermission, "Read")
		v.Field("dupes", []string{"Read", "Read"}).Unique()
		Expect(codes(v.Validate())).To(Equal([]string{"unknown:INVALID_PERMISSION", "dupes:DUPLICATE_LABEL"}))
	})

	It("runs custom rules", func() {
		v := validation.NewValidator()
		v.Field("answer", 41).Custom(func(value interface{}) *internal.AppError {
			if value.(int) != 42 {
				return internal.NewValidationFieldError("answer", "wrong answer", internal.ErrCodeInvalidField)
			}
			return nil
		})
		Expect(codes(v.Validate())).To(Equal([]string{"answer:INVALID_FIELD"}))
	})
})
