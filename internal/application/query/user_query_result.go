package query

import "files-manager/internal/application/common"

type UserQueryResult struct {
	Result *common.UserResult
}
