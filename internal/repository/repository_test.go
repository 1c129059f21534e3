package repository_test

import (
	"context"
	"errors"

	"gallery/internal/db"
	"gallery/internal/repository"
	"gallery/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GalleryRepository", func() {
	var (
		repo        *repository.GalleryRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewGalleryRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("Migrate", func() {
		It("migrates the user and photo tables", func() {
			Expect(repo.Migrate()).To(Succeed())

			Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
			tables := fakeStorage.MigrateTableArgsForCall(0)
			Expect(tables).To(HaveLen(2))
			Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Photo{}))
		})

		When("the migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(fakeErr)
			})

			It("returns a wrapped error", func() {
				Expect(repo.Migrate()).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		var user repository.User

		BeforeEach(func() {
			user = repository.User{ID: "user-1", Username: "alice", PasswordHash: "hash"}
		})

		It("inserts the user record", func() {
			Expect(repo.CreateUser(ctx, user)).To(Succeed())

			Expect(fakeStorage.InsertRecordCallCount()).To(Equal(1))
			_, record := fakeStorage.InsertRecordArgsForCall(0)
			Expect(record).To(Equal(&user))
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertRecordReturns(db.ErrDuplicate)
			})

			It("maps the constraint violation to a duplicate username error", func() {
				Expect(repo.CreateUser(ctx, user)).To(MatchError(repository.ErrDuplicateUsername))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					user := entity.(*repository.User)
					user.ID = "user-1"
					user.Username = value.(string)
					return nil
				}
			})

			It("returns the user", func() {
				user, err := repo.GetUserByUsername(ctx, "alice")
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-1"))
				Expect(user.Username).To(Equal("alice"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns a user not found error", func() {
				_, err := repo.GetUserByUsername(ctx, "nobody")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("GetPhotoByID", func() {
		When("the photo does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns a photo not found error", func() {
				_, err := repo.GetPhotoByID(ctx, "missing")
				Expect(err).To(MatchError(repository.ErrPhotoNotFound))
			})
		})
	})

	Describe("DeletePhotoOwnedBy", func() {
		When("the row matches id and owner", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("deletes with a single conditional statement", func() {
				deleted, err := repo.DeletePhotoOwnedBy(ctx, "photo-1", "user-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeTrue())

				_, model, query, args := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Photo{}))
				Expect(query).To(Equal("id = ? AND owner_user_id = ?"))
				Expect(args).To(Equal([]any{"photo-1", "user-1"}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("reports that nothing was deleted", func() {
				deleted, err := repo.DeletePhotoOwnedBy(ctx, "photo-1", "user-2")
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted).To(BeFalse())
			})
		})
	})

	Describe("ListPhotos", func() {
		BeforeEach(func() {
			fakeStorage.FindOrderedReturns(nil)
		})

		It("defaults to newest first with id as tiebreaker", func() {
			_, err := repo.ListPhotos(ctx, false, false, "")
			Expect(err).NotTo(HaveOccurred())

			_, _, order, query, args := fakeStorage.FindOrderedArgsForCall(0)
			Expect(order).To(Equal("upload_datetime DESC, id DESC"))
			Expect(query).To(BeEmpty())
			Expect(args).To(BeEmpty())
		})

		It("sorts by name ascending when requested", func() {
			_, err := repo.ListPhotos(ctx, true, true, "")
			Expect(err).NotTo(HaveOccurred())

			_, _, order, _, _ := fakeStorage.FindOrderedArgsForCall(0)
			Expect(order).To(Equal("name ASC, id DESC"))
		})

		It("applies the search filter as a substring match", func() {
			_, err := repo.ListPhotos(ctx, false, false, "cat")
			Expect(err).NotTo(HaveOccurred())

			_, _, _, query, args := fakeStorage.FindOrderedArgsForCall(0)
			Expect(query).To(Equal("name ILIKE ?"))
			Expect(args).To(Equal([]any{"%cat%"}))
		})
	})
})
