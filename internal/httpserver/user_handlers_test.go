package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/Skotchmaster/webstore/internal/transport"
	"github.com/stretchr/testify/require"
)

func aliceBody() transport.CreateUserRequest {
	return transport.CreateUserRequest{
		Username:  "alice",
		Password:  "pw1",
		FirstName: "A",
		LastName:  "L",
		Email:     "a@x.com",
	}
}

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp["id"])
	require.Equal(t, "alice", resp["username"])
	require.Equal(t, true, resp["active"])
	require.NotContains(t, resp, "password")
	require.NotContains(t, rec.Body.String(), "pw1")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))

	dup := aliceBody()
	dup.Email = "other@x.com"
	_, c = env.doJSONRequest(http.MethodPost, "/api/v1/users", dup)
	requireHTTPError(t, env.U.CreateUser(c), http.StatusBadRequest)

	var total int64
	require.NoError(t, env.DB.Model(&models.User{}).Count(&total).Error)
	require.EqualValues(t, 1, total)
}

func TestCreateUser_InvalidBody(t *testing.T) {
	env := newTestEnv(t)

	body := aliceBody()
	body.Password = ""
	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", body)
	requireHTTPError(t, env.U.CreateUser(c), http.StatusBadRequest)
}

func TestGetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/v1/users/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	requireHTTPError(t, env.U.GetUser(c), http.StatusNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/users/username/alice", nil)
	c.SetParamNames("username")
	c.SetParamValues("alice")
	require.NoError(t, env.U.GetUserByUsername(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp.Username)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/v1/users/username/ghost", nil)
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	requireHTTPError(t, env.U.GetUserByUsername(c), http.StatusNotFound)
}

func TestUpdateUser(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))

	body := transport.UserDTO{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "a@x.com",
		Active:    false,
	}
	rec, c := env.doJSONRequest(http.MethodPut, "/api/v1/users/1", body)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.U.UpdateUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.UserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Alice", resp.FirstName)
	require.False(t, resp.Active)
}

func TestUpdateUser_Conflict(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))

	bob := transport.CreateUserRequest{
		Username:  "bob",
		Password:  "pw2",
		FirstName: "B",
		LastName:  "M",
		Email:     "b@x.com",
	}
	_, c = env.doJSONRequest(http.MethodPost, "/api/v1/users", bob)
	require.NoError(t, env.U.CreateUser(c))

	body := transport.UserDTO{
		Username:  "alice",
		FirstName: "B",
		LastName:  "M",
		Email:     "b@x.com",
		Active:    true,
	}
	_, c = env.doJSONRequest(http.MethodPut, "/api/v1/users/2", body)
	c.SetParamNames("id")
	c.SetParamValues("2")
	requireHTTPError(t, env.U.UpdateUser(c), http.StatusBadRequest)
}

func TestUpdateUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	body := transport.UserDTO{
		Username:  "ghost",
		FirstName: "G",
		LastName:  "H",
		Email:     "g@x.com",
	}
	_, c := env.doJSONRequest(http.MethodPut, "/api/v1/users/42", body)
	c.SetParamNames("id")
	c.SetParamValues("42")
	requireHTTPError(t, env.U.UpdateUser(c), http.StatusNotFound)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/users", aliceBody())
	require.NoError(t, env.U.CreateUser(c))

	rec, c := env.doJSONRequest(http.MethodDelete, "/api/v1/users/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.U.DeleteUser(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodDelete, "/api/v1/users/42", nil)
	c.SetParamNames("id")
	c.SetParamValues("42")
	requireHTTPError(t, env.U.DeleteUser(c), http.StatusNotFound)
}
