// Package registry holds the in-memory per-account, per-region resource
// state behind the control-plane API. A Backend owns the keyed collections
// for one (account, region) pair; every operation is a synchronous,
// terminating computation over that state.
package registry

import (
	"strings"
	"sync"

	"qsmock/internal/domain"
)

// Backend is the resource registry for one (account, region) pair.
// A single mutex guards all collection reads and writes; the underlying
// collections are not safe for concurrent mutation on their own.
type Backend struct {
	accountID string
	region    string

	mu          sync.Mutex
	groups      *domain.OrderedMap[*domain.Group]
	users       *domain.OrderedMap[*domain.User]
	dataSources *domain.OrderedMap[*domain.DataSource]
	folders     *domain.OrderedMap[*domain.Folder]
}

// NewBackend creates an empty registry for the given account and region.
func NewBackend(accountID, region string) *Backend {
	return &Backend{
		accountID:   accountID,
		region:      region,
		groups:      domain.NewOrderedMap[*domain.Group](),
		users:       domain.NewOrderedMap[*domain.User](),
		dataSources: domain.NewOrderedMap[*domain.DataSource](),
		folders:     domain.NewOrderedMap[*domain.Folder](),
	}
}

// CreateGroup creates a group. There is no uniqueness check: a second
// create under the same key overwrites the previous entry.
func (b *Backend) CreateGroup(groupName, description, accountID, namespace string) *domain.Group {
	b.mu.Lock()
	defer b.mu.Unlock()

	group := domain.NewGroup(b.region, groupName, description, accountID, namespace)
	b.groups.Set(domain.CompositeKey(accountID, namespace, groupName), group)
	return group
}

// CreateGroupMembership adds the named member to an existing group,
// overwriting any previous membership for that name.
func (b *Backend) CreateGroupMembership(accountID, namespace, groupName, memberName string) (*domain.Membership, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, err := b.describeGroup(accountID, namespace, groupName)
	if err != nil {
		return nil, err
	}
	return group.AddMember(memberName), nil
}

// CreateDataSet constructs and returns a transient data set; it is not
// stored, so a later describe is not possible.
func (b *Backend) CreateDataSet(dataSetID, name string) *domain.DataSet {
	return domain.NewDataSet(b.accountID, b.region, dataSetID, name)
}

// CreateIngestion constructs and returns a transient ingestion, fixed in
// its initial status.
func (b *Backend) CreateIngestion(dataSetID, ingestionID string) *domain.Ingestion {
	return domain.NewIngestion(b.accountID, b.region, dataSetID, ingestionID)
}

// DeleteGroup removes the group if present; absent groups are a no-op.
func (b *Backend) DeleteGroup(accountID, namespace, groupName string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.groups.Delete(domain.CompositeKey(accountID, namespace, groupName))
}

// DeleteUser removes the user from every group's membership collection,
// then removes the user record itself. Absent users are a no-op, but the
// membership sweep still runs.
func (b *Backend) DeleteUser(accountID, namespace, userName string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, group := range b.groups.Values() {
		group.DeleteMember(userName)
	}
	b.users.Delete(domain.CompositeKey(accountID, namespace, userName))
}

// DescribeGroup returns the group under the exact composite key.
func (b *Backend) DescribeGroup(accountID, namespace, groupName string) (*domain.Group, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.describeGroup(accountID, namespace, groupName)
}

func (b *Backend) describeGroup(accountID, namespace, groupName string) (*domain.Group, error) {
	group, ok := b.groups.Get(domain.CompositeKey(accountID, namespace, groupName))
	if !ok {
		return nil, domain.ErrNotFound("Group %s not found", groupName)
	}
	return group, nil
}

// DescribeGroupMembership returns the membership of the named user in the
// named group; both the group and the membership must exist.
func (b *Backend) DescribeGroupMembership(accountID, namespace, groupName, userName string) (*domain.Membership, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, err := b.describeGroup(accountID, namespace, groupName)
	if err != nil {
		return nil, err
	}
	member := group.GetMember(userName)
	if member == nil {
		return nil, domain.ErrNotFound("User %s not found", userName)
	}
	return member, nil
}

// DescribeUser returns the user under the exact composite key.
func (b *Backend) DescribeUser(accountID, namespace, userName string) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.describeUser(accountID, namespace, userName)
}

func (b *Backend) describeUser(accountID, namespace, userName string) (*domain.User, error) {
	user, ok := b.users.Get(domain.CompositeKey(accountID, namespace, userName))
	if !ok {
		return nil, domain.ErrNotFound("User %s not found", userName)
	}
	return user, nil
}

// ListGroups returns all groups in the account namespace, in insertion
// order. Paging is the dispatch layer's concern.
func (b *Backend) ListGroups(accountID, namespace string) []*domain.Group {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.groupsByPrefix(domain.NamespacePrefix(accountID, namespace), nil)
}

// SearchGroups returns the groups in the account namespace matching every
// supplied filter. Filter validation happens before any group is inspected.
func (b *Backend) SearchGroups(accountID, namespace string, filters []domain.SearchFilter) ([]*domain.Group, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	match, err := domain.CompileGroupFilters(filters)
	if err != nil {
		return nil, err
	}
	return b.groupsByPrefix(domain.NamespacePrefix(accountID, namespace), match), nil
}

func (b *Backend) groupsByPrefix(prefix string, match domain.GroupMatcher) []*domain.Group {
	out := []*domain.Group{}
	for _, key := range b.groups.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		group, _ := b.groups.Get(key)
		if match != nil && !match(group) {
			continue
		}
		out = append(out, group)
	}
	return out
}

// ListGroupMemberships returns the full membership list of a group.
func (b *Backend) ListGroupMemberships(accountID, namespace, groupName string) ([]*domain.Membership, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, err := b.describeGroup(accountID, namespace, groupName)
	if err != nil {
		return nil, err
	}
	return group.ListMembers(), nil
}

// ListUsers returns all users in the account namespace, in insertion order.
func (b *Backend) ListUsers(accountID, namespace string) []*domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	prefix := domain.NamespacePrefix(accountID, namespace)
	out := []*domain.User{}
	for _, key := range b.users.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		user, _ := b.users.Get(key)
		out = append(out, user)
	}
	return out
}

// ListUserGroups returns the groups the named user is a member of. The
// scan covers every group in the backend, regardless of namespace; only
// afterwards is the result restricted to the requested namespace by key
// prefix. O(total groups in the backend) per call.
func (b *Backend) ListUserGroups(accountID, namespace, userName string) []*domain.Group {
	b.mu.Lock()
	defer b.mu.Unlock()

	prefix := domain.NamespacePrefix(accountID, namespace)
	out := []*domain.Group{}
	for _, key := range b.groups.Keys() {
		group, _ := b.groups.Get(key)
		if group.GetMember(userName) == nil {
			continue
		}
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		out = append(out, group)
	}
	return out
}

// RegisterUser creates a user. Like CreateGroup, a duplicate key silently
// overwrites.
func (b *Backend) RegisterUser(identityType, email, role, accountID, namespace, userName string) *domain.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	user := domain.NewUser(accountID, b.region, namespace, userName, email, identityType, role)
	b.users.Set(domain.CompositeKey(accountID, namespace, userName), user)
	return user
}

// UpdateUser assigns the email and role of an existing user.
func (b *Backend) UpdateUser(accountID, namespace, userName, email, role string) (*domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	user, err := b.describeUser(accountID, namespace, userName)
	if err != nil {
		return nil, err
	}
	user.Email = email
	user.Role = role
	return user, nil
}

// UpdateGroup assigns the description of an existing group.
func (b *Backend) UpdateGroup(accountID, namespace, groupName, description string) (*domain.Group, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	group, err := b.describeGroup(accountID, namespace, groupName)
	if err != nil {
		return nil, err
	}
	group.Description = description
	return group, nil
}

// CreateDataSource stores a new data source in the successful terminal
// state, keyed by account and id with an empty namespace segment.
func (b *Backend) CreateDataSource(accountID string, spec domain.DataSourceSpec) *domain.DataSource {
	b.mu.Lock()
	defer b.mu.Unlock()

	ds := domain.NewDataSource(accountID, b.region, spec)
	b.dataSources.Set(domain.CompositeKey(accountID, "", spec.DataSourceID), ds)
	return ds
}

// DescribeDataSource returns the data source under the exact composite key.
func (b *Backend) DescribeDataSource(accountID, dataSourceID string) (*domain.DataSource, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ds, ok := b.dataSources.Get(domain.CompositeKey(accountID, "", dataSourceID))
	if !ok {
		return nil, domain.ErrNotFound("DataSource '%s' not found", dataSourceID)
	}
	return ds, nil
}

// CreateFolder validates the folder id, name, and every supplied permission
// entry before anything is persisted; the first failure aborts the whole
// call with no partial folder left behind.
func (b *Backend) CreateFolder(accountID string, spec domain.FolderSpec) (*domain.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := domain.ValidateFolderID(spec.FolderID); err != nil {
		return nil, err
	}
	if spec.Name == "" {
		return nil, domain.ErrInvalidParameterValue("No folder name found")
	}
	for _, perm := range spec.Permissions {
		if !b.principalExists(perm.Principal) {
			return nil, domain.ErrInvalidParameterValue(
				"Principal ARN %s is not part of the same account %s", perm.Principal, accountID)
		}
		if err := perm.ValidateActions(domain.ResourceTypeFolder); err != nil {
			return nil, err
		}
	}

	folder := domain.NewFolder(accountID, b.region, spec)
	b.folders.Set(domain.CompositeKey(accountID, "", spec.FolderID), folder)
	return folder, nil
}

// principalExists reports whether the ARN names a user or group stored in
// this backend. Malformed or foreign ARNs never match.
func (b *Backend) principalExists(principalARN string) bool {
	if _, _, ok := domain.PrincipalKind(principalARN); !ok {
		return false
	}
	for _, user := range b.users.Values() {
		if user.ARN == principalARN {
			return true
		}
	}
	for _, group := range b.groups.Values() {
		if group.ARN == principalARN {
			return true
		}
	}
	return false
}

// DescribeFolder validates the folder id like create does, then returns the
// folder under the exact composite key.
func (b *Backend) DescribeFolder(accountID, folderID string) (*domain.Folder, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.describeFolder(accountID, folderID)
}

func (b *Backend) describeFolder(accountID, folderID string) (*domain.Folder, error) {
	if err := domain.ValidateFolderID(folderID); err != nil {
		return nil, err
	}
	folder, ok := b.folders.Get(domain.CompositeKey(accountID, "", folderID))
	if !ok {
		return nil, domain.ErrNotFound("Folder %s not found", folderID)
	}
	return folder, nil
}

// DescribeFolderPermissions returns the folder's permission list; an empty
// list when the folder was created without permissions.
func (b *Backend) DescribeFolderPermissions(accountID, folderID string) (*domain.Folder, []domain.Permission, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	folder, err := b.describeFolder(accountID, folderID)
	if err != nil {
		return nil, nil, err
	}
	return folder, folder.PermissionList(), nil
}
