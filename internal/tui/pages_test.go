package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-portal-client/models"
)

func TestMenuModel_ItemsFollowSession(t *testing.T) {
	f := newFixture(t)
	f.bootAnonymous(t)
	m := NewMenuModel(context.Background(), f.services)
	m.Init()

	titles := func() []string {
		var out []string
		for _, it := range m.items() {
			out = append(out, it.title)
		}
		return out
	}
	assert.Equal(t, []string{"Sign in", "Verify email"}, titles())

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Route: models.RouteLogin}, cmd())
}

func TestMenuModel_ModeratorSeesModeration(t *testing.T) {
	f := newFixture(t)
	mod := member
	mod.Role = models.RoleModerator
	f.bootAs(t, mod)
	m := NewMenuModel(context.Background(), f.services)

	view := m.View()
	assert.Contains(t, view, "Moderation")
	assert.NotContains(t, view, "Season administration")
	assert.Contains(t, view, "Signed in as alex")
}

func TestMenuModel_SignOut(t *testing.T) {
	f := newFixture(t)
	f.bootAs(t, member)
	m := NewMenuModel(context.Background(), f.services)
	m.Init()

	items := m.items()
	m.idx = len(items) - 1
	require.True(t, items[m.idx].logout)

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	f.creds.EXPECT().Clear(gomock.Any()).Return(nil)
	m.Update(cmd())

	assert.False(t, f.services.Sessions.Current().IsAuthenticated())
	assert.Equal(t, "Signed out", m.status)
	assert.Equal(t, 1, m.idx)
}

func TestVerifyModel_TokenSignsIn(t *testing.T) {
	f := newFixture(t)
	f.bootAnonymous(t)
	m := NewVerifyModel(context.Background(), f.services.Account)
	m.Init()
	m.token.SetValue("mail-token")

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	f.api.EXPECT().VerifyEmail(gomock.Any(), "mail-token").
		Return(models.VerifyEmailResponse{Status: "verified", Token: "tok-1"}, nil)
	f.api.EXPECT().CurrentUser(gomock.Any()).Return(member, nil)
	f.creds.EXPECT().Set(gomock.Any(), cred).Return(nil)
	f.creds.EXPECT().SetHints(gomock.Any(), gomock.Any()).Return(nil)

	_, next := m.Update(cmd())
	require.NotNil(t, next)
	assert.Equal(t, NavigateTo{Route: models.RouteProfile}, next())
}

func TestVerifyModel_AlreadyVerified(t *testing.T) {
	f := newFixture(t)
	f.bootAnonymous(t)
	m := NewVerifyModel(context.Background(), f.services.Account)
	m.Init()
	m.token.SetValue("mail-token")

	_, cmd := m.Update(keyEnter)
	f.api.EXPECT().VerifyEmail(gomock.Any(), "mail-token").
		Return(models.VerifyEmailResponse{Status: "ok", AlreadyVerified: true}, nil)

	_, next := m.Update(cmd())
	assert.Nil(t, next)
	assert.Contains(t, m.status, "already verified")
	assert.False(t, f.services.Sessions.Current().IsAuthenticated())
}

func TestProfileModel_RefreshError(t *testing.T) {
	f := newFixture(t)
	f.bootAs(t, member)
	m := NewProfileModel(context.Background(), f.services.Sessions)
	m.Init()

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	f.api.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, errInvalidCode)
	m.Update(cmd())

	assert.False(t, m.busy)
	assert.Equal(t, "Invalid TOTP code", m.errMsg)
	assert.True(t, f.services.Sessions.Current().IsAuthenticated())
	assert.Contains(t, m.View(), "alex")
}

func TestTOTPModel_SetupThenCopy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	f := newFixture(t)
	f.bootAs(t, member)
	m := NewTOTPModel(context.Background(), f.services.Sessions, f.services.Account)
	m.Init()

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)

	_, cmd = m.Update(runes("s"))
	require.NotNil(t, cmd)
	f.api.EXPECT().SetupTOTP(gomock.Any()).Return(models.TOTPSetupResponse{Secret: "JBSWY3DP"}, nil)
	m.Update(cmd())
	assert.Contains(t, m.View(), "JBSWY3DP")

	m.Update(runes("c"))
	assert.Equal(t, "JBSWY3DP", copied)
	assert.Equal(t, "Secret copied to clipboard", m.status)
}

func TestTOTPModel_ClipboardFailure(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	f := newFixture(t)
	f.bootAs(t, member)
	m := NewTOTPModel(context.Background(), f.services.Sessions, f.services.Account)
	m.Init()
	m.secret = "JBSWY3DP"

	m.Update(runes("c"))
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestTOTPModel_CodeIgnoresClipboardPaste(t *testing.T) {
	f := newFixture(t)
	f.bootAs(t, member)
	m := NewTOTPModel(context.Background(), f.services.Sessions, f.services.Account)
	m.Init()
	m.secret = "JBSWY3DP"

	_, cmd := m.Update(ctrlV)
	feed(m, cmd)
	typeInto(m, "1a2")

	assert.Equal(t, "12", m.code.Value())
}

func TestModerationModel_BanAsksFirst(t *testing.T) {
	f := newFixture(t)
	mod := member
	mod.Role = models.RoleModerator
	f.bootAs(t, mod)
	m := NewModerationModel(context.Background(), f.services.Sessions, f.services.Admin)
	m.Init()

	typeInto(m, "42")
	m.Update(keyTab)
	typeInto(m, "spam")

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Ban user 42?")

	_, cmd = m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)

	f.api.EXPECT().BanUser(gomock.Any(), int64(42), "spam").Return(nil)
	m.Update(cmd())
	assert.Equal(t, "User 42 banned", m.status)
}

func TestModerationModel_DeclineAndBadID(t *testing.T) {
	f := newFixture(t)
	f.bootAs(t, root)
	m := NewModerationModel(context.Background(), f.services.Sessions, f.services.Admin)
	m.Init()

	typeInto(m, "abc")
	m.Update(keyEnter)
	assert.Nil(t, m.confirm)
	assert.Equal(t, msgBadUserID, m.errMsg)

	m.inputs[0].SetValue("42")
	_, cmd := m.Update(ctrlU)
	assert.Nil(t, cmd)
	require.NotNil(t, m.confirm)

	_, cmd = m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
}

func TestApplyModel_NotAllowed(t *testing.T) {
	f := newFixture(t)
	f.bootAs(t, member)
	m := NewApplyModel(context.Background(), f.services.Sessions, f.services.Applications)
	m.Init()
	typeInto(m, "hello")

	assert.Contains(t, m.View(), "Verify your email and Discord account")

	_, cmd := m.Update(ctrlS)
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "Verify your email and Discord account before applying", m.errMsg)
}

func TestApplyModel_Submit(t *testing.T) {
	f := newFixture(t)
	verified := member
	verified.DiscordVerified = true
	f.bootAs(t, verified)
	m := NewApplyModel(context.Background(), f.services.Sessions, f.services.Applications)
	m.Init()
	typeInto(m, "hello")

	_, cmd := m.Update(ctrlS)
	require.NotNil(t, cmd)
	f.api.EXPECT().SubmitApplication(gomock.Any(), "hello").Return(nil)
	m.Update(cmd())

	assert.True(t, m.submitted)
	assert.Equal(t, "Application submitted", m.status)

	_, cmd = m.Update(ctrlS)
	assert.Nil(t, cmd)
}
