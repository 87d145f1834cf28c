// Package api implements the HTTP dispatch layer: it extracts typed
// parameters from wire requests, resolves the registry for the target
// (account, region) pair, invokes the operation, and serializes the result.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"qsmock/internal/domain"
	"qsmock/internal/registry"
)

// Handler dispatches control-plane requests onto per-(account, region)
// registry backends.
type Handler struct {
	backends      *registry.BackendSet
	defaultRegion string
	logger        *slog.Logger
}

// NewHandler creates a dispatch handler over the given backend container.
func NewHandler(backends *registry.BackendSet, defaultRegion string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{backends: backends, defaultRegion: defaultRegion, logger: logger}
}

// Routes mounts every supported operation.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/accounts/{AwsAccountId}", func(r chi.Router) {
		r.Route("/namespaces/{Namespace}", func(r chi.Router) {
			r.Post("/groups", h.createGroup)
			r.Get("/groups", h.listGroups)
			r.Post("/groups-search", h.searchGroups)
			r.Get("/groups/{GroupName}", h.describeGroup)
			r.Put("/groups/{GroupName}", h.updateGroup)
			r.Delete("/groups/{GroupName}", h.deleteGroup)
			r.Get("/groups/{GroupName}/members", h.listGroupMemberships)
			r.Put("/groups/{GroupName}/members/{MemberName}", h.createGroupMembership)
			r.Get("/groups/{GroupName}/members/{MemberName}", h.describeGroupMembership)
			r.Post("/users", h.registerUser)
			r.Get("/users", h.listUsers)
			r.Get("/users/{UserName}", h.describeUser)
			r.Put("/users/{UserName}", h.updateUser)
			r.Delete("/users/{UserName}", h.deleteUser)
			r.Get("/users/{UserName}/groups", h.listUserGroups)
		})
		r.Post("/data-sets", h.createDataSet)
		r.Put("/data-sets/{DataSetId}/ingestions/{IngestionId}", h.createIngestion)
		r.Post("/data-sources", h.createDataSource)
		r.Get("/data-sources/{DataSourceId}", h.describeDataSource)
		r.Post("/folders/{FolderId}", h.createFolder)
		r.Get("/folders/{FolderId}", h.describeFolder)
		r.Get("/folders/{FolderId}/permissions", h.describeFolderPermissions)
		r.Get("/folders/{FolderId}/resolved-permissions", h.describeFolderResolvedPermissions)
	})
	return r
}

// backend resolves the registry instance for the request's account and
// region.
func (h *Handler) backend(r *http.Request) *registry.Backend {
	account := pathParam(r, "AwsAccountId")
	region := regionFromRequest(r, h.defaultRegion)
	return h.backends.Get(account, region)
}

// pathParam returns the named chi URL parameter, unescaped. Group and user
// names may contain characters like '@' that clients percent-encode.
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(v); err == nil {
		return unescaped
	}
	return v
}

// pageFromRequest reads the max-results / next-token query parameters.
func pageFromRequest(r *http.Request) domain.PageRequest {
	page := domain.PageRequest{NextToken: r.URL.Query().Get("next-token")}
	if v := r.URL.Query().Get("max-results"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page.MaxResults = n
		}
	}
	return page
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.ErrValidation("Invalid JSON request body")
	}
	return nil
}

// nextToken renders a pagination token as the wire's nullable NextToken.
func nextToken(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}

// === Groups ===

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		GroupName   string `json:"GroupName"`
		Description string `json:"Description"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	group := h.backend(r).CreateGroup(
		body.GroupName, body.Description, pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"))
	writeJSON(w, http.StatusOK, map[string]any{"Group": group.Response()})
}

func (h *Handler) describeGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.backend(r).DescribeGroup(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "GroupName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"Group": group.Response()})
}

func (h *Handler) updateGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string `json:"Description"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	group, err := h.backend(r).UpdateGroup(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "GroupName"), body.Description)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"Group": group.Response()})
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	h.backend(r).DeleteGroup(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "GroupName"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.backend(r).ListGroups(pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"))
	page, token := domain.Paginate(groups, pageFromRequest(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"NextToken": nextToken(token),
		"GroupList": groupResponses(page),
	})
}

func (h *Handler) searchGroups(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Filters []domain.SearchFilter `json:"Filters"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	groups, err := h.backend(r).SearchGroups(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), body.Filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, token := domain.Paginate(groups, pageFromRequest(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"NextToken": nextToken(token),
		"GroupList": groupResponses(page),
	})
}

func groupResponses(groups []*domain.Group) []domain.GroupResponse {
	out := make([]domain.GroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Response())
	}
	return out
}

// === Memberships ===

func (h *Handler) createGroupMembership(w http.ResponseWriter, r *http.Request) {
	member, err := h.backend(r).CreateGroupMembership(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"),
		pathParam(r, "GroupName"), pathParam(r, "MemberName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"GroupMember": member.Response()})
}

func (h *Handler) describeGroupMembership(w http.ResponseWriter, r *http.Request) {
	member, err := h.backend(r).DescribeGroupMembership(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"),
		pathParam(r, "GroupName"), pathParam(r, "MemberName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"GroupMember": member.Response()})
}

func (h *Handler) listGroupMemberships(w http.ResponseWriter, r *http.Request) {
	members, err := h.backend(r).ListGroupMemberships(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "GroupName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, token := domain.Paginate(members, pageFromRequest(r))
	out := make([]domain.MembershipResponse, 0, len(page))
	for _, m := range page {
		out = append(out, m.Response())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"NextToken":       nextToken(token),
		"GroupMemberList": out,
	})
}

// === Users ===

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IdentityType string `json:"IdentityType"`
		Email        string `json:"Email"`
		UserRole     string `json:"UserRole"`
		UserName     string `json:"UserName"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	user := h.backend(r).RegisterUser(
		body.IdentityType, body.Email, body.UserRole,
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), body.UserName)
	writeJSON(w, http.StatusOK, map[string]any{
		"User":              user.Response(),
		"UserInvitationUrl": "TBD",
	})
}

func (h *Handler) describeUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend(r).DescribeUser(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "UserName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"User": user.Response()})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"Email"`
		Role  string `json:"Role"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.backend(r).UpdateUser(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "UserName"),
		body.Email, body.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"User": user.Response()})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	h.backend(r).DeleteUser(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "UserName"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users := h.backend(r).ListUsers(pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"))
	page, token := domain.Paginate(users, pageFromRequest(r))
	out := make([]domain.UserResponse, 0, len(page))
	for _, u := range page {
		out = append(out, u.Response())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"NextToken": nextToken(token),
		"UserList":  out,
	})
}

func (h *Handler) listUserGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.backend(r).ListUserGroups(
		pathParam(r, "AwsAccountId"), pathParam(r, "Namespace"), pathParam(r, "UserName"))
	page, token := domain.Paginate(groups, pageFromRequest(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"NextToken": nextToken(token),
		"GroupList": groupResponses(page),
	})
}

// === Data sets / ingestions ===

func (h *Handler) createDataSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DataSetID string `json:"DataSetId"`
		Name      string `json:"Name"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	dataSet := h.backend(r).CreateDataSet(body.DataSetID, body.Name)
	writeJSON(w, http.StatusOK, dataSet.Response())
}

func (h *Handler) createIngestion(w http.ResponseWriter, r *http.Request) {
	ingestion := h.backend(r).CreateIngestion(
		pathParam(r, "DataSetId"), pathParam(r, "IngestionId"))
	writeJSON(w, http.StatusOK, ingestion.Response())
}

// === Data sources ===

func (h *Handler) createDataSource(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DataSourceID            string              `json:"DataSourceId"`
		Name                    string              `json:"Name"`
		Type                    string              `json:"Type"`
		DataSourceParameters    map[string]any      `json:"DataSourceParameters"`
		Credentials             map[string]any      `json:"Credentials"`
		Permissions             []domain.Permission `json:"Permissions"`
		VpcConnectionProperties map[string]string   `json:"VpcConnectionProperties"`
		SslProperties           map[string]any      `json:"SslProperties"`
		Tags                    []domain.Tag        `json:"Tags"`
		FolderArns              []string            `json:"FolderArns"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	ds := h.backend(r).CreateDataSource(pathParam(r, "AwsAccountId"), domain.DataSourceSpec{
		DataSourceID:  body.DataSourceID,
		Name:          body.Name,
		Type:          body.Type,
		Parameters:    body.DataSourceParameters,
		Credentials:   body.Credentials,
		Permissions:   body.Permissions,
		VPCProperties: body.VpcConnectionProperties,
		SSLProperties: body.SslProperties,
		Tags:          body.Tags,
		FolderARNs:    body.FolderArns,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"Arn":            ds.ARN,
		"DataSourceId":   ds.DataSourceID,
		"CreationStatus": ds.Status,
	})
}

func (h *Handler) describeDataSource(w http.ResponseWriter, r *http.Request) {
	ds, err := h.backend(r).DescribeDataSource(
		pathParam(r, "AwsAccountId"), pathParam(r, "DataSourceId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"DataSource": ds.Response()})
}

// === Folders ===

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name            string              `json:"Name"`
		FolderType      string              `json:"FolderType"`
		ParentFolderArn string              `json:"ParentFolderArn"`
		SharingModel    string              `json:"SharingModel"`
		Permissions     []domain.Permission `json:"Permissions"`
		Tags            []domain.Tag        `json:"Tags"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	folder, err := h.backend(r).CreateFolder(pathParam(r, "AwsAccountId"), domain.FolderSpec{
		FolderID:        pathParam(r, "FolderId"),
		Name:            body.Name,
		FolderType:      body.FolderType,
		ParentFolderARN: body.ParentFolderArn,
		SharingModel:    body.SharingModel,
		Permissions:     body.Permissions,
		Tags:            body.Tags,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"Arn":      folder.ARN,
		"FolderId": folder.FolderID,
	})
}

func (h *Handler) describeFolder(w http.ResponseWriter, r *http.Request) {
	folder, err := h.backend(r).DescribeFolder(
		pathParam(r, "AwsAccountId"), pathParam(r, "FolderId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"Folder": folder.Response()})
}

func (h *Handler) describeFolderPermissions(w http.ResponseWriter, r *http.Request) {
	h.folderPermissions(w, r)
}

// The emulator resolves permissions to the same list it stores; nothing is
// inherited from parent folders.
func (h *Handler) describeFolderResolvedPermissions(w http.ResponseWriter, r *http.Request) {
	h.folderPermissions(w, r)
}

func (h *Handler) folderPermissions(w http.ResponseWriter, r *http.Request) {
	folder, permissions, err := h.backend(r).DescribeFolderPermissions(
		pathParam(r, "AwsAccountId"), pathParam(r, "FolderId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"FolderId":    folder.FolderID,
		"Arn":         folder.ARN,
		"Permissions": permissions,
	})
}
