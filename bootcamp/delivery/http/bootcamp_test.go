package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	bootcampHttp "github.com/semka95/devcamper/bootcamp/delivery/http"
	"github.com/semka95/devcamper/bootcamp/mock"
	"github.com/semka95/devcamper/domain"
	"github.com/semka95/devcamper/query"
	"github.com/semka95/devcamper/tests"
	"github.com/semka95/devcamper/web/auth"
)

type bootcampBody struct {
	Success bool            `json:"success"`
	Data    domain.Bootcamp `json:"data"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *domain.ResponseError {
	body := new(domain.ResponseError)
	err := json.NewDecoder(rec.Body).Decode(body)
	require.NoError(t, err)
	assert.False(t, body.Success)
	return body
}

func TestBootcampHTTP(t *testing.T) {
	tBootcamp := tests.NewBootcamp()
	claims := tests.NewClaims(tests.PublisherID, auth.RolePublisher)
	authenticator := tests.NewAuthenticator(t)

	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockBootcampUsecase(controller)

	tracer := sdktrace.NewTracerProvider().Tracer("")
	e, v := tests.NewEcho(t)
	handler := bootcampHttp.NewBootcampHandler(uc, authenticator, v, zap.NewNop(), tracer)

	req := new(http.Request)
	c := e.NewContext(req, nil)

	// Test BootcampHandler.Fetch
	t.Run("Fetch success", func(t *testing.T) {
		q := query.Query{Page: 1, Limit: 25}
		uc.EXPECT().Fetch(gomock.Any(), q).Return(&query.Result[domain.Bootcamp]{
			Success: true,
			Count:   1,
			Data:    []domain.Bootcamp{*tBootcamp},
		}, nil)

		req = httptest.NewRequest(echo.GET, "/v1/bootcamps", nil)
		rec := httptest.NewRecorder()
		c.Reset(req, rec)
		c.Set("query", q)

		err := handler.Fetch(c)
		require.NoError(t, err)

		body := new(query.Result[domain.Bootcamp])
		err = json.NewDecoder(rec.Body).Decode(body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, body.Success)
		assert.Equal(t, 1, body.Count)
		assert.Equal(t, tBootcamp.Name, body.Data[0].Name)
	})

	// Test BootcampHandler.GetByID
	casesGet := []struct {
		description   string
		mockCalls     func(muc *mock.MockBootcampUsecase)
		checkResponse func(rec *httptest.ResponseRecorder)
	}{
		{
			description: "GetByID success",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().GetByID(gomock.Any(), tBootcamp.ID.Hex()).Return(tBootcamp, nil)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := new(bootcampBody)
				err := json.NewDecoder(rec.Body).Decode(body)
				require.NoError(t, err)
				assert.True(t, body.Success)
				assert.EqualValues(t, *tBootcamp, body.Data)
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			description: "GetByID not found",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().GetByID(gomock.Any(), tBootcamp.ID.Hex()).Return(nil, domain.ErrNotFound)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, domain.ErrNotFound.Error(), body.Message)
				assert.Equal(t, http.StatusNotFound, rec.Code)
			},
		},
		{
			description: "GetByID internal error is hidden",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().GetByID(gomock.Any(), tBootcamp.ID.Hex()).Return(nil, domain.ErrInternalServerError)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
			},
		},
	}

	for _, tc := range casesGet {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req = httptest.NewRequest(echo.GET, "/v1/bootcamps/"+tBootcamp.ID.Hex(), nil)

			rec := httptest.NewRecorder()
			c.Reset(req, rec)
			c.SetPath("/v1/bootcamps/:id")
			c.SetParamNames("id")
			c.SetParamValues(tBootcamp.ID.Hex())

			err := handler.GetByID(c)
			require.NoError(t, err)

			tc.checkResponse(rec)
		})
	}

	// Test BootcampHandler.GetInRadius
	casesRadius := []struct {
		description   string
		distance      string
		mockCalls     func(muc *mock.MockBootcampUsecase)
		checkResponse func(rec *httptest.ResponseRecorder)
	}{
		{
			description: "GetInRadius success",
			distance:    "10",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().GetInRadius(gomock.Any(), "02118", 10.0).Return([]*domain.Bootcamp{tBootcamp}, nil)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := new(struct {
					Success bool              `json:"success"`
					Count   int               `json:"count"`
					Data    []domain.Bootcamp `json:"data"`
				})
				err := json.NewDecoder(rec.Body).Decode(body)
				require.NoError(t, err)
				assert.Equal(t, 1, body.Count)
				assert.Equal(t, tBootcamp.ID, body.Data[0].ID)
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			description: "GetInRadius nothing found",
			distance:    "1.5",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().GetInRadius(gomock.Any(), "02118", 1.5).Return(nil, nil)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			description: "GetInRadius distance is not a number",
			distance:    "far",
			mockCalls:   func(muc *mock.MockBootcampUsecase) {},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Contains(t, body.Message, "distance must be a number")
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tc := range casesRadius {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req = httptest.NewRequest(echo.GET, "/v1/bootcamps/radius/02118/"+tc.distance, nil)

			rec := httptest.NewRecorder()
			c.Reset(req, rec)
			c.SetPath("/v1/bootcamps/radius/:zipcode/:distance")
			c.SetParamNames("zipcode", "distance")
			c.SetParamValues("02118", tc.distance)

			err := handler.GetInRadius(c)
			require.NoError(t, err)

			tc.checkResponse(rec)
		})
	}

	// Test BootcampHandler.Store
	tCreate := tests.NewCreateBootcamp()
	createB, err := json.Marshal(tCreate)
	require.NoError(t, err)

	tCreateBadCareer := tests.NewCreateBootcamp()
	tCreateBadCareer.Careers = []string{"Cooking"}
	badCareerB, err := json.Marshal(tCreateBadCareer)
	require.NoError(t, err)

	casesStore := []struct {
		description   string
		mockCalls     func(muc *mock.MockBootcampUsecase)
		reqBody       []byte
		claims        *auth.Claims
		checkResponse func(rec *httptest.ResponseRecorder)
	}{
		{
			description: "Store success",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().Store(gomock.Any(), tCreate, claims).Return(tBootcamp, nil)
			},
			reqBody: createB,
			claims:  claims,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := new(bootcampBody)
				err := json.NewDecoder(rec.Body).Decode(body)
				require.NoError(t, err)
				assert.EqualValues(t, *tBootcamp, body.Data)
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			description: "Store publisher already has a bootcamp",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().Store(gomock.Any(), tCreate, claims).Return(nil, domain.ErrBadParamInput)
			},
			reqBody: createB,
			claims:  claims,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				decodeError(t, rec)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			description: "Store validation error",
			mockCalls:   func(muc *mock.MockBootcampUsecase) {},
			reqBody:     badCareerB,
			claims:      claims,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, "validation error", body.Message)
				assert.Contains(t, body.Fields["CreateBootcamp.careers[0]"], "must be one of")
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			description: "Store bad request data",
			mockCalls:   func(muc *mock.MockBootcampUsecase) {},
			reqBody:     []byte("wrong data"),
			claims:      claims,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Contains(t, body.Message, "Syntax error")
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			description: "Store without token",
			mockCalls:   func(muc *mock.MockBootcampUsecase) {},
			reqBody:     createB,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				decodeError(t, rec)
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
	}

	for _, tc := range casesStore {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req = httptest.NewRequest(echo.POST, "/v1/bootcamps", bytes.NewReader(tc.reqBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			c = e.NewContext(req, rec)
			c.SetPath("/v1/bootcamps")
			if tc.claims != nil {
				tests.SetClaims(c, tc.claims)
			}

			err := handler.Store(c)
			require.NoError(t, err)

			tc.checkResponse(rec)
		})
	}

	// Test BootcampHandler.Update
	tUpdate := domain.UpdateBootcamp{Name: tests.StringPointer("Devworks"), Housing: tests.BoolPointer(false)}
	updateB, err := json.Marshal(tUpdate)
	require.NoError(t, err)

	casesUpdate := []struct {
		description   string
		mockCalls     func(muc *mock.MockBootcampUsecase)
		reqBody       []byte
		checkResponse func(rec *httptest.ResponseRecorder)
	}{
		{
			description: "Update success",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				updated := tests.NewBootcamp()
				updated.Name = "Devworks"
				updated.Slug = "devworks"
				updated.Housing = false
				muc.EXPECT().Update(gomock.Any(), tBootcamp.ID.Hex(), tUpdate, claims).Return(updated, nil)
			},
			reqBody: updateB,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := new(bootcampBody)
				err := json.NewDecoder(rec.Body).Decode(body)
				require.NoError(t, err)
				assert.Equal(t, "devworks", body.Data.Slug)
				assert.False(t, body.Data.Housing)
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			description: "Update not owner",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().Update(gomock.Any(), tBootcamp.ID.Hex(), tUpdate, claims).Return(nil, domain.ErrForbidden)
			},
			reqBody: updateB,
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, domain.ErrForbidden.Error(), body.Message)
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
		{
			description: "Update validation error",
			mockCalls:   func(muc *mock.MockBootcampUsecase) {},
			reqBody:     []byte(`{"email":"not an email"}`),
			checkResponse: func(rec *httptest.ResponseRecorder) {
				body := decodeError(t, rec)
				assert.Equal(t, "email must be a valid email address", body.Fields["UpdateBootcamp.email"])
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tc := range casesUpdate {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req = httptest.NewRequest(echo.PUT, "/v1/bootcamps/"+tBootcamp.ID.Hex(), bytes.NewReader(tc.reqBody))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			c = e.NewContext(req, rec)
			c.SetPath("/v1/bootcamps/:id")
			c.SetParamNames("id")
			c.SetParamValues(tBootcamp.ID.Hex())
			tests.SetClaims(c, claims)

			err := handler.Update(c)
			require.NoError(t, err)

			tc.checkResponse(rec)
		})
	}

	// Test BootcampHandler.Delete
	casesDelete := []struct {
		description   string
		mockCalls     func(muc *mock.MockBootcampUsecase)
		checkResponse func(rec *httptest.ResponseRecorder)
	}{
		{
			description: "Delete success",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().Delete(gomock.Any(), tBootcamp.ID.Hex(), claims).Return(nil)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"success":true,"data":{}}`, rec.Body.String())
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			description: "Delete not found",
			mockCalls: func(muc *mock.MockBootcampUsecase) {
				muc.EXPECT().Delete(gomock.Any(), tBootcamp.ID.Hex(), claims).Return(domain.ErrNotFound)
			},
			checkResponse: func(rec *httptest.ResponseRecorder) {
				decodeError(t, rec)
				assert.Equal(t, http.StatusNotFound, rec.Code)
			},
		},
	}

	for _, tc := range casesDelete {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls(uc)
			req = httptest.NewRequest(echo.DELETE, "/v1/bootcamps/"+tBootcamp.ID.Hex(), nil)

			rec := httptest.NewRecorder()
			c = e.NewContext(req, rec)
			c.SetPath("/v1/bootcamps/:id")
			c.SetParamNames("id")
			c.SetParamValues(tBootcamp.ID.Hex())
			tests.SetClaims(c, claims)

			err := handler.Delete(c)
			require.NoError(t, err)

			tc.checkResponse(rec)
		})
	}

	// Test BootcampHandler.UploadPhoto
	t.Run("UploadPhoto success", func(t *testing.T) {
		buf := new(bytes.Buffer)
		w := multipart.NewWriter(buf)
		part, err := w.CreateFormFile("file", "camp.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		withPhoto := tests.NewBootcamp()
		withPhoto.Photo = "photo_" + tBootcamp.ID.Hex() + ".png"
		uc.EXPECT().UploadPhoto(gomock.Any(), tBootcamp.ID.Hex(), gomock.Not(gomock.Nil()), claims).Return(withPhoto, nil)

		req = httptest.NewRequest(echo.PUT, "/v1/bootcamps/"+tBootcamp.ID.Hex()+"/photo", buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		rec := httptest.NewRecorder()
		c = e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(tBootcamp.ID.Hex())
		tests.SetClaims(c, claims)

		err = handler.UploadPhoto(c)
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true,"data":"`+withPhoto.Photo+`"}`, rec.Body.String())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("UploadPhoto without file", func(t *testing.T) {
		uc.EXPECT().UploadPhoto(gomock.Any(), tBootcamp.ID.Hex(), gomock.Nil(), claims).Return(nil, domain.ErrBadParamInput)

		req = httptest.NewRequest(echo.PUT, "/v1/bootcamps/"+tBootcamp.ID.Hex()+"/photo", nil)
		rec := httptest.NewRecorder()
		c = e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(tBootcamp.ID.Hex())
		tests.SetClaims(c, claims)

		err := handler.UploadPhoto(c)
		require.NoError(t, err)
		decodeError(t, rec)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBootcampRoutes(t *testing.T) {
	authenticator := tests.NewAuthenticator(t)

	controller := gomock.NewController(t)
	defer controller.Finish()
	uc := mock.NewMockBootcampUsecase(controller)

	e, v := tests.NewEcho(t)
	bootcampHttp.NewBootcampHandler(uc, authenticator, v, zap.NewNop(), sdktrace.NewTracerProvider().Tracer("")).RegisterRoutes(e)

	publisher := tests.NewClaims(tests.PublisherID, auth.RolePublisher)
	user := tests.NewClaims(tests.UserID, auth.RoleUser)

	cases := []struct {
		description string
		method      string
		target      string
		token       string
		mockCalls   func()
		code        int
	}{
		{
			description: "list parses advanced query",
			method:      echo.GET,
			target:      "/v1/bootcamps?housing=true&select=name&page=2&limit=5",
			mockCalls: func() {
				uc.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ interface{}, q query.Query) (*query.Result[domain.Bootcamp], error) {
						assert.Equal(t, 2, q.Page)
						assert.Equal(t, 5, q.Limit)
						assert.Equal(t, []string{"name"}, q.Select)
						return &query.Result[domain.Bootcamp]{Success: true}, nil
					})
			},
			code: http.StatusOK,
		},
		{
			description: "list rejects broken page",
			method:      echo.GET,
			target:      "/v1/bootcamps?page=first",
			mockCalls:   func() {},
			code:        http.StatusBadRequest,
		},
		{
			description: "radius route wins over id",
			method:      echo.GET,
			target:      "/v1/bootcamps/radius/02118/10",
			mockCalls: func() {
				uc.EXPECT().GetInRadius(gomock.Any(), "02118", 10.0).Return(nil, nil)
			},
			code: http.StatusOK,
		},
		{
			description: "create needs token",
			method:      echo.POST,
			target:      "/v1/bootcamps",
			mockCalls:   func() {},
			code:        http.StatusUnauthorized,
		},
		{
			description: "create needs publisher role",
			method:      echo.POST,
			target:      "/v1/bootcamps",
			token:       tests.BearerToken(t, authenticator, user),
			mockCalls:   func() {},
			code:        http.StatusForbidden,
		},
		{
			description: "delete as publisher",
			method:      echo.DELETE,
			target:      "/v1/bootcamps/" + tests.BootcampID.Hex(),
			token:       tests.BearerToken(t, authenticator, publisher),
			mockCalls: func() {
				uc.EXPECT().Delete(gomock.Any(), tests.BootcampID.Hex(), gomock.Any()).Return(nil)
			},
			code: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.description, func(t *testing.T) {
			tc.mockCalls()
			req := httptest.NewRequest(tc.method, tc.target, strings.NewReader("{}"))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tc.token != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.token)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}
