package core_test

import (
	"gallery/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("upload validation", func() {
	Describe("ValidateUpload", func() {
		It("accepts every allowed extension regardless of case", func() {
			for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.GIF", "e.webp"} {
				Expect(core.ValidateUpload(name, 1024)).To(Succeed(), name)
			}
		})

		It("rejects disallowed extensions", func() {
			Expect(core.ValidateUpload("evil.exe", 1024)).To(MatchError(core.ErrUnsupportedType))
			Expect(core.ValidateUpload("script.png.sh", 1024)).To(MatchError(core.ErrUnsupportedType))
		})

		It("rejects filenames without an extension", func() {
			Expect(core.ValidateUpload("noext", 1024)).To(MatchError(core.ErrUnsupportedType))
			Expect(core.ValidateUpload("trailingdot.", 1024)).To(MatchError(core.ErrUnsupportedType))
		})

		It("rejects an empty filename", func() {
			Expect(core.ValidateUpload("", 1024)).To(MatchError(core.ErrMissingFile))
		})

		It("enforces the global size ceiling", func() {
			Expect(core.ValidateUpload("big.png", core.MaxUploadBytes)).To(Succeed())
			Expect(core.ValidateUpload("big.png", core.MaxUploadBytes+1)).To(MatchError(core.ErrFileTooLarge))
		})
	})

	Describe("NewStorageName", func() {
		It("prefixes a random token and normalizes the extension", func() {
			name, err := core.NewStorageName("Cat Photo.PNG")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(MatchRegexp(`^[0-9a-f]{32}_Cat_Photo\.png$`))
		})

		It("produces distinct names for the same input", func() {
			first, err := core.NewStorageName("cat.png")
			Expect(err).NotTo(HaveOccurred())
			second, err := core.NewStorageName("cat.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))
		})

		It("strips path components and traversal sequences", func() {
			name, err := core.NewStorageName("../../etc/passwd.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(MatchRegexp(`^[0-9a-f]{32}_passwd\.png$`))

			name, err = core.NewStorageName(`..\..\windows\evil.jpg`)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(MatchRegexp(`^[0-9a-f]{32}_evil\.jpg$`))
		})

		It("falls back to a default base when nothing safe remains", func() {
			name, err := core.NewStorageName("....png")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(MatchRegexp(`^[0-9a-f]{32}_photo\.png$`))
		})
	})
})
