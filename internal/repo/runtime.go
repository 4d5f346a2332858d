// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/appointment"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/clinic"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/conversation"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/message"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/notification"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/pet"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/serviceitem"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/shiftcapacity"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/user"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/usersession"
	"github.com/pawcare-vn/pawcare_backend/internal/repo/veterinarian"
	"github.com/pawcare-vn/pawcare_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDate is the schema descriptor for date field.
	appointmentDescDate := appointmentFields[2].Descriptor()
	// appointment.DateValidator is a validator for the "date" field. It is called by the builders before save.
	appointment.DateValidator = func() func(string) error {
		validators := appointmentDescDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(date string) error {
			for _, fn := range fns {
				if err := fn(date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[1].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescSlug is the schema descriptor for slug field.
	clinicDescSlug := clinicFields[2].Descriptor()
	// clinic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	clinic.SlugValidator = func() func(string) error {
		validators := clinicDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescLogoKey is the schema descriptor for logo_key field.
	clinicDescLogoKey := clinicFields[4].Descriptor()
	// clinic.LogoKeyValidator is a validator for the "logo_key" field. It is called by the builders before save.
	clinic.LogoKeyValidator = clinicDescLogoKey.Validators[0].(func(string) error)
	// clinicDescPhone is the schema descriptor for phone field.
	clinicDescPhone := clinicFields[5].Descriptor()
	// clinic.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	clinic.PhoneValidator = func() func(string) error {
		validators := clinicDescPhone.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(phone string) error {
			for _, fn := range fns {
				if err := fn(phone); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescEmail is the schema descriptor for email field.
	clinicDescEmail := clinicFields[6].Descriptor()
	// clinic.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	clinic.EmailValidator = clinicDescEmail.Validators[0].(func(string) error)
	// clinicDescAddress is the schema descriptor for address field.
	clinicDescAddress := clinicFields[7].Descriptor()
	// clinic.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	clinic.AddressValidator = clinicDescAddress.Validators[0].(func(string) error)
	// clinicDescWard is the schema descriptor for ward field.
	clinicDescWard := clinicFields[8].Descriptor()
	// clinic.WardValidator is a validator for the "ward" field. It is called by the builders before save.
	clinic.WardValidator = clinicDescWard.Validators[0].(func(string) error)
	// clinicDescDistrict is the schema descriptor for district field.
	clinicDescDistrict := clinicFields[9].Descriptor()
	// clinic.DistrictValidator is a validator for the "district" field. It is called by the builders before save.
	clinic.DistrictValidator = clinicDescDistrict.Validators[0].(func(string) error)
	// clinicDescCity is the schema descriptor for city field.
	clinicDescCity := clinicFields[10].Descriptor()
	// clinic.CityValidator is a validator for the "city" field. It is called by the builders before save.
	clinic.CityValidator = clinicDescCity.Validators[0].(func(string) error)
	// clinicDescLicenseNumberEnc is the schema descriptor for license_number_enc field.
	clinicDescLicenseNumberEnc := clinicFields[11].Descriptor()
	// clinic.LicenseNumberEncValidator is a validator for the "license_number_enc" field. It is called by the builders before save.
	clinic.LicenseNumberEncValidator = clinicDescLicenseNumberEnc.Validators[0].(func(string) error)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescIsActive is the schema descriptor for is_active field.
	conversationDescIsActive := conversationFields[3].Descriptor()
	// conversation.DefaultIsActive holds the default value on creation for the is_active field.
	conversation.DefaultIsActive = conversationDescIsActive.Default.(bool)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageMixinFields1 := messageMixin[1].Fields()
	_ = messageMixinFields1
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageMixinFields1[0].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescIsRead is the schema descriptor for is_read field.
	messageDescIsRead := messageFields[6].Descriptor()
	// message.DefaultIsRead holds the default value on creation for the is_read field.
	message.DefaultIsRead = messageDescIsRead.Default.(bool)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageMixinFields0[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationMixinFields1 := notificationMixin[1].Fields()
	_ = notificationMixinFields1
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields1[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationMixinFields0[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	petMixin := schema.Pet{}.Mixin()
	petMixinFields0 := petMixin[0].Fields()
	_ = petMixinFields0
	petMixinFields1 := petMixin[1].Fields()
	_ = petMixinFields1
	petFields := schema.Pet{}.Fields()
	_ = petFields
	// petDescCreatedAt is the schema descriptor for created_at field.
	petDescCreatedAt := petMixinFields1[0].Descriptor()
	// pet.DefaultCreatedAt holds the default value on creation for the created_at field.
	pet.DefaultCreatedAt = petDescCreatedAt.Default.(func() time.Time)
	// petDescUpdatedAt is the schema descriptor for updated_at field.
	petDescUpdatedAt := petMixinFields1[1].Descriptor()
	// pet.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pet.DefaultUpdatedAt = petDescUpdatedAt.Default.(func() time.Time)
	// pet.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pet.UpdateDefaultUpdatedAt = petDescUpdatedAt.UpdateDefault.(func() time.Time)
	// petDescName is the schema descriptor for name field.
	petDescName := petFields[1].Descriptor()
	// pet.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pet.NameValidator = func() func(string) error {
		validators := petDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// petDescBreed is the schema descriptor for breed field.
	petDescBreed := petFields[3].Descriptor()
	// pet.BreedValidator is a validator for the "breed" field. It is called by the builders before save.
	pet.BreedValidator = petDescBreed.Validators[0].(func(string) error)
	// petDescWeightKg is the schema descriptor for weight_kg field.
	petDescWeightKg := petFields[5].Descriptor()
	// pet.WeightKgValidator is a validator for the "weight_kg" field. It is called by the builders before save.
	pet.WeightKgValidator = func() func(float64) error {
		validators := petDescWeightKg.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(weight_kg float64) error {
			for _, fn := range fns {
				if err := fn(weight_kg); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// petDescAvatarKey is the schema descriptor for avatar_key field.
	petDescAvatarKey := petFields[7].Descriptor()
	// pet.AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	pet.AvatarKeyValidator = petDescAvatarKey.Validators[0].(func(string) error)
	// petDescID is the schema descriptor for id field.
	petDescID := petMixinFields0[0].Descriptor()
	// pet.DefaultID holds the default value on creation for the id field.
	pet.DefaultID = petDescID.Default.(func() uuid.UUID)
	serviceitemMixin := schema.ServiceItem{}.Mixin()
	serviceitemMixinFields0 := serviceitemMixin[0].Fields()
	_ = serviceitemMixinFields0
	serviceitemMixinFields1 := serviceitemMixin[1].Fields()
	_ = serviceitemMixinFields1
	serviceitemFields := schema.ServiceItem{}.Fields()
	_ = serviceitemFields
	// serviceitemDescCreatedAt is the schema descriptor for created_at field.
	serviceitemDescCreatedAt := serviceitemMixinFields1[0].Descriptor()
	// serviceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	serviceitem.DefaultCreatedAt = serviceitemDescCreatedAt.Default.(func() time.Time)
	// serviceitemDescUpdatedAt is the schema descriptor for updated_at field.
	serviceitemDescUpdatedAt := serviceitemMixinFields1[1].Descriptor()
	// serviceitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	serviceitem.DefaultUpdatedAt = serviceitemDescUpdatedAt.Default.(func() time.Time)
	// serviceitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	serviceitem.UpdateDefaultUpdatedAt = serviceitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// serviceitemDescName is the schema descriptor for name field.
	serviceitemDescName := serviceitemFields[1].Descriptor()
	// serviceitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	serviceitem.NameValidator = func() func(string) error {
		validators := serviceitemDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// serviceitemDescPrice is the schema descriptor for price field.
	serviceitemDescPrice := serviceitemFields[3].Descriptor()
	// serviceitem.PriceValidator is a validator for the "price" field. It is called by the builders before save.
	serviceitem.PriceValidator = serviceitemDescPrice.Validators[0].(func(int64) error)
	// serviceitemDescDurationMin is the schema descriptor for duration_min field.
	serviceitemDescDurationMin := serviceitemFields[4].Descriptor()
	// serviceitem.DefaultDurationMin holds the default value on creation for the duration_min field.
	serviceitem.DefaultDurationMin = serviceitemDescDurationMin.Default.(int)
	// serviceitem.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	serviceitem.DurationMinValidator = serviceitemDescDurationMin.Validators[0].(func(int) error)
	// serviceitemDescIsActive is the schema descriptor for is_active field.
	serviceitemDescIsActive := serviceitemFields[5].Descriptor()
	// serviceitem.DefaultIsActive holds the default value on creation for the is_active field.
	serviceitem.DefaultIsActive = serviceitemDescIsActive.Default.(bool)
	// serviceitemDescID is the schema descriptor for id field.
	serviceitemDescID := serviceitemMixinFields0[0].Descriptor()
	// serviceitem.DefaultID holds the default value on creation for the id field.
	serviceitem.DefaultID = serviceitemDescID.Default.(func() uuid.UUID)
	shiftcapacityMixin := schema.ShiftCapacity{}.Mixin()
	shiftcapacityMixinFields0 := shiftcapacityMixin[0].Fields()
	_ = shiftcapacityMixinFields0
	shiftcapacityMixinFields1 := shiftcapacityMixin[1].Fields()
	_ = shiftcapacityMixinFields1
	shiftcapacityFields := schema.ShiftCapacity{}.Fields()
	_ = shiftcapacityFields
	// shiftcapacityDescCreatedAt is the schema descriptor for created_at field.
	shiftcapacityDescCreatedAt := shiftcapacityMixinFields1[0].Descriptor()
	// shiftcapacity.DefaultCreatedAt holds the default value on creation for the created_at field.
	shiftcapacity.DefaultCreatedAt = shiftcapacityDescCreatedAt.Default.(func() time.Time)
	// shiftcapacityDescUpdatedAt is the schema descriptor for updated_at field.
	shiftcapacityDescUpdatedAt := shiftcapacityMixinFields1[1].Descriptor()
	// shiftcapacity.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	shiftcapacity.DefaultUpdatedAt = shiftcapacityDescUpdatedAt.Default.(func() time.Time)
	// shiftcapacity.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	shiftcapacity.UpdateDefaultUpdatedAt = shiftcapacityDescUpdatedAt.UpdateDefault.(func() time.Time)
	// shiftcapacityDescDate is the schema descriptor for date field.
	shiftcapacityDescDate := shiftcapacityFields[1].Descriptor()
	// shiftcapacity.DateValidator is a validator for the "date" field. It is called by the builders before save.
	shiftcapacity.DateValidator = func() func(string) error {
		validators := shiftcapacityDescDate.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(date string) error {
			for _, fn := range fns {
				if err := fn(date); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// shiftcapacityDescCapacity is the schema descriptor for capacity field.
	shiftcapacityDescCapacity := shiftcapacityFields[3].Descriptor()
	// shiftcapacity.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	shiftcapacity.CapacityValidator = shiftcapacityDescCapacity.Validators[0].(func(int) error)
	// shiftcapacityDescID is the schema descriptor for id field.
	shiftcapacityDescID := shiftcapacityMixinFields0[0].Descriptor()
	// shiftcapacity.DefaultID holds the default value on creation for the id field.
	shiftcapacity.DefaultID = shiftcapacityDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFullName is the schema descriptor for full_name field.
	userDescFullName := userFields[0].Descriptor()
	// user.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	user.FullNameValidator = userDescFullName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescAvatarKey is the schema descriptor for avatar_key field.
	userDescAvatarKey := userFields[5].Descriptor()
	// user.AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	user.AvatarKeyValidator = userDescAvatarKey.Validators[0].(func(string) error)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[7].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[9].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
	veterinarianMixin := schema.Veterinarian{}.Mixin()
	veterinarianMixinFields0 := veterinarianMixin[0].Fields()
	_ = veterinarianMixinFields0
	veterinarianMixinFields1 := veterinarianMixin[1].Fields()
	_ = veterinarianMixinFields1
	veterinarianFields := schema.Veterinarian{}.Fields()
	_ = veterinarianFields
	// veterinarianDescCreatedAt is the schema descriptor for created_at field.
	veterinarianDescCreatedAt := veterinarianMixinFields1[0].Descriptor()
	// veterinarian.DefaultCreatedAt holds the default value on creation for the created_at field.
	veterinarian.DefaultCreatedAt = veterinarianDescCreatedAt.Default.(func() time.Time)
	// veterinarianDescUpdatedAt is the schema descriptor for updated_at field.
	veterinarianDescUpdatedAt := veterinarianMixinFields1[1].Descriptor()
	// veterinarian.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	veterinarian.DefaultUpdatedAt = veterinarianDescUpdatedAt.Default.(func() time.Time)
	// veterinarian.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	veterinarian.UpdateDefaultUpdatedAt = veterinarianDescUpdatedAt.UpdateDefault.(func() time.Time)
	// veterinarianDescFullName is the schema descriptor for full_name field.
	veterinarianDescFullName := veterinarianFields[1].Descriptor()
	// veterinarian.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	veterinarian.FullNameValidator = func() func(string) error {
		validators := veterinarianDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// veterinarianDescPhone is the schema descriptor for phone field.
	veterinarianDescPhone := veterinarianFields[2].Descriptor()
	// veterinarian.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	veterinarian.PhoneValidator = veterinarianDescPhone.Validators[0].(func(string) error)
	// veterinarianDescEmail is the schema descriptor for email field.
	veterinarianDescEmail := veterinarianFields[3].Descriptor()
	// veterinarian.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	veterinarian.EmailValidator = veterinarianDescEmail.Validators[0].(func(string) error)
	// veterinarianDescSpecialty is the schema descriptor for specialty field.
	veterinarianDescSpecialty := veterinarianFields[4].Descriptor()
	// veterinarian.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	veterinarian.SpecialtyValidator = veterinarianDescSpecialty.Validators[0].(func(string) error)
	// veterinarianDescYearsExperience is the schema descriptor for years_experience field.
	veterinarianDescYearsExperience := veterinarianFields[6].Descriptor()
	// veterinarian.DefaultYearsExperience holds the default value on creation for the years_experience field.
	veterinarian.DefaultYearsExperience = veterinarianDescYearsExperience.Default.(int)
	// veterinarian.YearsExperienceValidator is a validator for the "years_experience" field. It is called by the builders before save.
	veterinarian.YearsExperienceValidator = veterinarianDescYearsExperience.Validators[0].(func(int) error)
	// veterinarianDescAvatarKey is the schema descriptor for avatar_key field.
	veterinarianDescAvatarKey := veterinarianFields[7].Descriptor()
	// veterinarian.AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	veterinarian.AvatarKeyValidator = veterinarianDescAvatarKey.Validators[0].(func(string) error)
	// veterinarianDescIsActive is the schema descriptor for is_active field.
	veterinarianDescIsActive := veterinarianFields[8].Descriptor()
	// veterinarian.DefaultIsActive holds the default value on creation for the is_active field.
	veterinarian.DefaultIsActive = veterinarianDescIsActive.Default.(bool)
	// veterinarianDescID is the schema descriptor for id field.
	veterinarianDescID := veterinarianMixinFields0[0].Descriptor()
	// veterinarian.DefaultID holds the default value on creation for the id field.
	veterinarian.DefaultID = veterinarianDescID.Default.(func() uuid.UUID)
}
