package blob_test

import (
	"os"
	"path/filepath"
	"strings"

	"gallery/internal/blob"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DiskStore", func() {
	var (
		root  string
		store *blob.DiskStore
	)

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "blob-test-*")
		Expect(err).NotTo(HaveOccurred())

		store, err = blob.NewDiskStore(root)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(root)).To(Succeed())
	})

	Describe("NewDiskStore", func() {
		It("creates the root directory when missing", func() {
			nested := filepath.Join(root, "a", "b")
			_, err := blob.NewDiskStore(nested)
			Expect(err).NotTo(HaveOccurred())
			Expect(nested).To(BeADirectory())
		})
	})

	Describe("Put", func() {
		It("writes the blob under the given name", func() {
			err := store.Put("token_cat.png", strings.NewReader("content"))
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(filepath.Join(root, "token_cat.png"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("content"))
		})

		It("leaves no temp files behind", func() {
			Expect(store.Put("token_cat.png", strings.NewReader("content"))).To(Succeed())

			entries, err := os.ReadDir(root)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(Equal("token_cat.png"))
		})

		It("refuses names with path separators or traversal sequences", func() {
			for _, name := range []string{"", "a/b.png", `a\b.png`, "../escape.png", "..", ".hidden"} {
				Expect(store.Put(name, strings.NewReader("x"))).To(MatchError(blob.ErrUnsafeName), name)
			}
		})
	})

	Describe("Delete", func() {
		It("removes an existing blob", func() {
			Expect(store.Put("token_cat.png", strings.NewReader("content"))).To(Succeed())
			Expect(store.Delete("token_cat.png")).To(Succeed())
			Expect(filepath.Join(root, "token_cat.png")).NotTo(BeAnExistingFile())
		})

		It("is idempotent for absent blobs", func() {
			Expect(store.Delete("never-existed.png")).To(Succeed())
			Expect(store.Delete("never-existed.png")).To(Succeed())
		})

		It("refuses unsafe names", func() {
			Expect(store.Delete("../escape.png")).To(MatchError(blob.ErrUnsafeName))
		})
	})

	Describe("URLFor", func() {
		It("maps a storage name to its public path", func() {
			Expect(store.URLFor("token_cat.png")).To(Equal("/uploads/token_cat.png"))
		})
	})

	Describe("FilePath", func() {
		It("resolves a safe name inside the root", func() {
			path, err := store.FilePath("token_cat.png")
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(Equal(filepath.Join(root, "token_cat.png")))
		})

		It("refuses traversal attempts", func() {
			_, err := store.FilePath("../../etc/passwd")
			Expect(err).To(MatchError(blob.ErrUnsafeName))
		})
	})
})
