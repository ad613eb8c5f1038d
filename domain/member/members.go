package member

import (
	"planboard/idgen"
	"planboard/persistence"
	"planboard/session"

	"github.com/fundwit/go-commons/types"
	"github.com/sony/sonyflake"
)

type Member struct {
	ID types.ID `json:"id" gorm:"primary_key"`

	Name       string `json:"name" binding:"required,lte=255"`
	Department string `json:"department"`
	AvatarUrl  string `json:"avatarUrl"`

	CreateTime types.Timestamp `json:"createTime" sql:"type:DATETIME(6) NOT NULL"`
}

func (m *Member) TableName() string {
	return "members"
}

type MemberCreation struct {
	Name       string `json:"name" binding:"required,lte=255"`
	Department string `json:"department" binding:"lte=255"`
	AvatarUrl  string `json:"avatarUrl" binding:"lte=512"`
}

type MemberQuery struct {
	Department string     `json:"department" form:"department"`
	MemberIDs  []types.ID `json:"memberIds" form:"memberId"`
}

var (
	memberIdWorker = sonyflake.NewSonyflake(sonyflake.Settings{})

	CreateMemberFunc = CreateMember
	QueryMembersFunc = QueryMembers
)

func CreateMember(c MemberCreation, s *session.Session) (*Member, error) {
	r := Member{ID: idgen.NextID(memberIdWorker), Name: c.Name, Department: c.Department,
		AvatarUrl: c.AvatarUrl, CreateTime: types.CurrentTimestamp()}
	if err := persistence.ActiveDataSourceManager.GormDB().Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func QueryMembers(q MemberQuery, s *session.Session) ([]Member, error) {
	members := []Member{}
	db := persistence.ActiveDataSourceManager.GormDB()
	query := db.Order("name ASC")
	if q.Department != "" {
		query = query.Where("department = ?", q.Department)
	}
	if len(q.MemberIDs) > 0 {
		query = query.Where("id in (?)", q.MemberIDs)
	}
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
