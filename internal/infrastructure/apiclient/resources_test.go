package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytebasket/internal/domain/auth"
	"bytebasket/internal/domain/donation"
	"bytebasket/internal/domain/foodbank"
)

func TestLoginDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		var creds auth.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "dana@example.com", creds.Email)
		w.Write([]byte(`{"success":true,"token":"tok-1","user":{"_id":"u1","name":"Dana","role":"donor"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := c.Login(context.Background(), auth.Credentials{Email: "dana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "Dana", res.User.Name)
	assert.Equal(t, auth.RoleDonor, res.User.Role)
}

func TestVerifyEmailPassesTokenQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-email", r.URL.Path)
		assert.Equal(t, "abc 123", r.URL.Query().Get("token"))
		w.Write([]byte(`{"success":true,"message":"Email verified successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	msg, err := c.VerifyEmail(context.Background(), "abc 123")
	require.NoError(t, err)
	assert.Equal(t, "Email verified successfully", msg)
}

func TestFoodBanksDecodeBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"fb1","name":"Downtown","city":"Vancouver"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	banks, err := c.ListFoodBanks(context.Background())
	require.NoError(t, err)
	require.Len(t, banks, 1)
	assert.Equal(t, "Downtown", banks[0].Name)
}

func TestStorageListQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage", r.URL.Path)
		assert.Equal(t, "fb1", r.URL.Query().Get("foodBankId"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	locs, err := c.ListStorageLocations(context.Background(), "fb1")
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestShiftSignupPaths(t *testing.T) {
	var method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"success":true,"data":{"id":"s1","status":"confirmed"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	shift, err := c.SignUpForShift(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/shifts/s1/signup", path)
	assert.Equal(t, "confirmed", shift.Status)

	require.NoError(t, c.CancelShift(context.Background(), "s1"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/shifts/s1/signup", path)
}

func TestSubmitDonationMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/donations", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Dana Reyes", r.FormValue("donorName"))
		assert.Equal(t, "2.5", r.FormValue("quantity"))
		assert.Equal(t, "kg", r.FormValue("unit"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "rice.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	d := donation.Donation{
		DonorName:   "Dana Reyes",
		DonorEmail:  "dana@example.com",
		ProductName: "Rice",
		Quantity:    decimal.RequireFromString("2.5"),
		Unit:        "kg",
		Category:    "dry-goods",
	}
	img := &donation.Image{Filename: "rice.jpg", ContentType: "image/jpeg", Data: []byte{0xFF, 0xD8}}
	require.NoError(t, c.SubmitDonation(context.Background(), d, img))
}

func TestCreateFoodBankSendsInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in foodbank.FoodBankInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Downtown", in.Name)
		w.Write([]byte(`{"_id":"fb9","name":"Downtown"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	fb, err := c.CreateFoodBank(context.Background(), foodbank.FoodBankInput{
		Name: "Downtown", Address: "12 Main St", City: "Vancouver",
	})
	require.NoError(t, err)
	assert.Equal(t, "fb9", fb.ID)
}
