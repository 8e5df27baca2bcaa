package repositories

// RepositoryProvider bundles all repository implementations so the service
// container can be wired from a single adapter (pgsql or memory).
type RepositoryProvider struct {
	UserRepo         UserRepository
	ConstituencyRepo ConstituencyRepository
	ElectionRepo     ElectionRepository
	VoteRepo         VoteRepository
	AuditRepo        AuditRepository
}
