package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"gallery/internal/core"
	"gallery/internal/core/fake"
	"gallery/internal/repository"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Gallery", func() {
	var (
		fakeRepo   *fake.Repository
		fakeTokens *fake.TokenIssuer
		fakeBlobs  *fake.BlobStore
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		gallery *core.Gallery

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeTokens = new(fake.TokenIssuer)
		fakeBlobs = new(fake.BlobStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		gallery = core.NewGallery(fakeLogger, fakeRepo, fakeTokens, fakeBlobs)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg      core.RegisterMessage
			user     core.UserRecord
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "alice",
				Password: "secret1",
			}
			genToken = jwt.New(jwt.SigningMethodHS512)

			fakeTokens.GenerateReturns(genToken)
			fakeTokens.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			user, token, err = gallery.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			It("creates the user with a hashed password and returns a session token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(user.Username).To(Equal("alice"))
				Expect(user.ID).NotTo(BeEmpty())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.Username).To(Equal("alice"))
				Expect(argUser.PasswordHash).NotTo(Equal("secret1"))
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("secret1"))).To(Succeed())
				Expect(argUser.CreatedAt.IsZero()).To(BeFalse())

				Expect(fakeTokens.GenerateCallCount()).To(Equal(1))
				argInfo := fakeTokens.GenerateArgsForCall(0)
				Expect(argInfo.Username).To(Equal("alice"))
				Expect(argInfo.Subject).To(Equal(argUser.ID))
				Expect(argInfo.Expiration).To(Equal(24 * time.Hour))
			})
		})

		When("the username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrDuplicateUsername)
			})

			It("returns the conflict error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("the insert fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("returns a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeTokens.SignCallCount()).To(Equal(0))
			})
		})

		When("signing the session token fails", func() {
			BeforeEach(func() {
				fakeTokens.SignReturns("", fakeErr)
			})

			It("returns the signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			msg            core.AuthMessage
			user           core.UserRecord
			token          string
			err            error
			userId         string
			hashedPassword string
		)

		BeforeEach(func() {
			userId = uuid.NewString()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			msg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			fakeTokens.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
			fakeTokens.SignReturns("signed.token", nil)
		})

		JustBeforeEach(func() {
			user, token, err = gallery.Login(ctx, msg)
		})

		When("the credentials are valid", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("returns the user and a signed session token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))
				Expect(user).To(Equal(core.UserRecord{ID: userId, Username: "testuser"}))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("testuser"))

				argInfo := fakeTokens.GenerateArgsForCall(0)
				Expect(argInfo.Subject).To(Equal(userId))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns the same error as for a wrong password", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeTokens.SignCallCount()).To(Equal(0))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				msg.Password = "wrongpass"
			})

			It("returns the same error as for an unknown user", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeTokens.SignCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails unexpectedly", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("returns a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CurrentUser", func() {
		var (
			ident core.Identity
			err   error
		)

		JustBeforeEach(func() {
			ident, err = gallery.CurrentUser("some.token")
		})

		When("the token is valid", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(jwt.MapClaims{
					"sub":      "user-1",
					"username": "alice",
				}, nil)
			})

			It("returns the identity from the claims", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(ident).To(Equal(core.Identity{UserID: "user-1", Username: "alice"}))
			})
		})

		When("the token is rejected", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(nil, fakeErr)
			})

			It("returns an invalid session error", func() {
				Expect(err).To(MatchError(core.ErrInvalidSession))
			})
		})

		When("the subject claim is missing", func() {
			BeforeEach(func() {
				fakeTokens.ValidateReturns(jwt.MapClaims{"username": "alice"}, nil)
			})

			It("returns an invalid session error", func() {
				Expect(err).To(MatchError(core.ErrInvalidSession))
			})
		})
	})

	Describe("UploadPhoto", func() {
		var (
			ident  core.Identity
			msg    core.UploadMessage
			record core.PhotoRecord
			err    error
		)

		BeforeEach(func() {
			ident = core.Identity{UserID: "user-1", Username: "alice"}
			msg = core.UploadMessage{
				Name:     "Cat",
				Filename: "cat.png",
				Size:     50 * 1024,
				Content:  strings.NewReader("not really a png"),
			}

			fakeBlobs.URLForStub = func(name string) string {
				return "/uploads/" + name
			}
		})

		JustBeforeEach(func() {
			record, err = gallery.UploadPhoto(ctx, ident, msg)
		})

		When("the upload succeeds", func() {
			It("stores the blob and records the photo", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeBlobs.PutCallCount()).To(Equal(1))
				storedName, content := fakeBlobs.PutArgsForCall(0)
				Expect(storedName).To(MatchRegexp(`^[0-9a-f]{32}_cat\.png$`))
				Expect(content).NotTo(BeNil())

				Expect(fakeRepo.CreatePhotoCallCount()).To(Equal(1))
				_, argPhoto := fakeRepo.CreatePhotoArgsForCall(0)
				Expect(argPhoto.OwnerUserID).To(Equal("user-1"))
				Expect(argPhoto.Name).To(Equal("Cat"))
				Expect(argPhoto.StoredFilename).To(Equal(storedName))
				Expect(argPhoto.UploadDatetime.IsZero()).To(BeFalse())

				Expect(record.Name).To(Equal("Cat"))
				Expect(record.OwnerUserID).To(Equal("user-1"))
				Expect(record.ImageURL).To(Equal("/uploads/" + storedName))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(0))
			})
		})

		When("the display name is empty", func() {
			BeforeEach(func() {
				msg.Name = ""
			})

			It("rejects the upload with no side effects", func() {
				Expect(err).To(MatchError(core.ErrInvalidName))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
				Expect(fakeRepo.CreatePhotoCallCount()).To(Equal(0))
			})
		})

		When("the display name exceeds 40 characters", func() {
			BeforeEach(func() {
				msg.Name = strings.Repeat("x", 41)
			})

			It("rejects the upload with no side effects", func() {
				Expect(err).To(MatchError(core.ErrInvalidName))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
				Expect(fakeRepo.CreatePhotoCallCount()).To(Equal(0))
			})
		})

		When("the file has no extension", func() {
			BeforeEach(func() {
				msg.Filename = "catpng"
			})

			It("rejects the upload with no side effects", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedType))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
				Expect(fakeRepo.CreatePhotoCallCount()).To(Equal(0))
			})
		})

		When("the extension is not allowed", func() {
			BeforeEach(func() {
				msg.Filename = "evil.exe"
			})

			It("rejects the upload with no side effects", func() {
				Expect(err).To(MatchError(core.ErrUnsupportedType))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("the file exceeds the size ceiling", func() {
			BeforeEach(func() {
				msg.Size = core.MaxUploadBytes + 1
			})

			It("rejects the upload with no side effects", func() {
				Expect(err).To(MatchError(core.ErrFileTooLarge))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("no file content is present", func() {
			BeforeEach(func() {
				msg.Content = nil
			})

			It("rejects the upload", func() {
				Expect(err).To(MatchError(core.ErrMissingFile))
				Expect(fakeBlobs.PutCallCount()).To(Equal(0))
			})
		})

		When("writing the blob fails", func() {
			BeforeEach(func() {
				fakeBlobs.PutReturns(fakeErr)
			})

			It("returns the error without touching the catalog", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreatePhotoCallCount()).To(Equal(0))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(0))
			})
		})

		When("recording the photo fails after the blob was written", func() {
			BeforeEach(func() {
				fakeRepo.CreatePhotoReturns(fakeErr)
			})

			It("removes the blob again before surfacing the error", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakeBlobs.PutCallCount()).To(Equal(1))
				storedName, _ := fakeBlobs.PutArgsForCall(0)

				Expect(fakeBlobs.DeleteCallCount()).To(Equal(1))
				Expect(fakeBlobs.DeleteArgsForCall(0)).To(Equal(storedName))
			})
		})

		When("both the insert and the blob cleanup fail", func() {
			BeforeEach(func() {
				fakeRepo.CreatePhotoReturns(fakeErr)
				fakeBlobs.DeleteReturns(errors.New("disk broke"))
			})

			It("still surfaces the insert error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(1))
			})
		})
	})

	Describe("DeletePhoto", func() {
		var (
			ident core.Identity
			err   error
			photo repository.Photo
		)

		BeforeEach(func() {
			ident = core.Identity{UserID: "user-1", Username: "alice"}
			photo = repository.Photo{
				ID:             "photo-1",
				OwnerUserID:    "user-1",
				Name:           "Cat",
				StoredFilename: "abc123_cat.png",
			}
		})

		JustBeforeEach(func() {
			err = gallery.DeletePhoto(ctx, ident, "photo-1")
		})

		When("the caller owns the photo", func() {
			BeforeEach(func() {
				fakeRepo.GetPhotoByIDReturns(photo, nil)
				fakeRepo.DeletePhotoOwnedByReturns(true, nil)
			})

			It("deletes the row and then the blob", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeletePhotoOwnedByCallCount()).To(Equal(1))
				_, argPhotoID, argOwnerID := fakeRepo.DeletePhotoOwnedByArgsForCall(0)
				Expect(argPhotoID).To(Equal("photo-1"))
				Expect(argOwnerID).To(Equal("user-1"))

				Expect(fakeBlobs.DeleteCallCount()).To(Equal(1))
				Expect(fakeBlobs.DeleteArgsForCall(0)).To(Equal("abc123_cat.png"))
			})
		})

		When("the photo does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetPhotoByIDReturns(repository.Photo{}, repository.ErrPhotoNotFound)
			})

			It("returns not found and deletes nothing", func() {
				Expect(err).To(MatchError(core.ErrPhotoNotFound))
				Expect(fakeRepo.DeletePhotoOwnedByCallCount()).To(Equal(0))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(0))
			})
		})

		When("the photo belongs to someone else", func() {
			BeforeEach(func() {
				photo.OwnerUserID = "user-2"
				fakeRepo.GetPhotoByIDReturns(photo, nil)
			})

			It("refuses and leaves row and blob untouched", func() {
				Expect(err).To(MatchError(core.ErrNotOwner))
				Expect(fakeRepo.DeletePhotoOwnedByCallCount()).To(Equal(0))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(0))
			})
		})

		When("a concurrent delete removed the row first", func() {
			BeforeEach(func() {
				fakeRepo.GetPhotoByIDReturns(photo, nil)
				fakeRepo.DeletePhotoOwnedByReturns(false, nil)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrPhotoNotFound))
				Expect(fakeBlobs.DeleteCallCount()).To(Equal(0))
			})
		})

		When("removing the blob fails", func() {
			BeforeEach(func() {
				fakeRepo.GetPhotoByIDReturns(photo, nil)
				fakeRepo.DeletePhotoOwnedByReturns(true, nil)
				fakeBlobs.DeleteReturns(fakeErr)
			})

			It("treats the cleanup as best effort and succeeds", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("ListPhotos", func() {
		var (
			records []core.PhotoRecord
			err     error
			query   core.ListQuery
		)

		BeforeEach(func() {
			query = core.ListQuery{Sort: "date", Order: "desc"}

			fakeBlobs.URLForStub = func(name string) string {
				return "/uploads/" + name
			}
		})

		JustBeforeEach(func() {
			records, err = gallery.ListPhotos(ctx, query)
		})

		When("photos exist", func() {
			BeforeEach(func() {
				fakeRepo.ListPhotosReturns([]repository.Photo{
					{ID: "p2", Name: "Dog", StoredFilename: "t2_dog.jpg", OwnerUserID: "user-2"},
					{ID: "p1", Name: "Cat", StoredFilename: "t1_cat.png", OwnerUserID: "user-1"},
				}, nil)
			})

			It("maps rows to public records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].ID).To(Equal("p2"))
				Expect(records[0].ImageURL).To(Equal("/uploads/t2_dog.jpg"))
				Expect(records[1].OwnerUserID).To(Equal("user-1"))

				_, sortByName, ascending, search := fakeRepo.ListPhotosArgsForCall(0)
				Expect(sortByName).To(BeFalse())
				Expect(ascending).To(BeFalse())
				Expect(search).To(BeEmpty())
			})
		})

		When("sorting by name ascending with a search filter", func() {
			BeforeEach(func() {
				query = core.ListQuery{Sort: "name", Order: "asc", Search: "cat"}
				fakeRepo.ListPhotosReturns([]repository.Photo{}, nil)
			})

			It("passes the sort parameters through", func() {
				Expect(err).NotTo(HaveOccurred())
				_, sortByName, ascending, search := fakeRepo.ListPhotosArgsForCall(0)
				Expect(sortByName).To(BeTrue())
				Expect(ascending).To(BeTrue())
				Expect(search).To(Equal("cat"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.ListPhotosReturns(nil, fakeErr)
			})

			It("returns a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Ping", func() {
		When("the repository answers", func() {
			BeforeEach(func() {
				fakeRepo.PingReturns(nil)
			})

			It("succeeds", func() {
				Expect(gallery.Ping(ctx)).To(Succeed())
			})
		})

		When("the repository is unreachable", func() {
			BeforeEach(func() {
				fakeRepo.PingReturns(fakeErr)
			})

			It("fails", func() {
				Expect(gallery.Ping(ctx)).To(MatchError(fakeErr))
			})
		})
	})
})
